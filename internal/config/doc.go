// Package config resolves gg's configuration.
//
// Precedence: built-in defaults, then ~/.config/gg/config.toml, then
// GG_* environment variables. Configuration is read once per invocation
// and carried on the context.
package config
