package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Option sources, reported by gg config.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// Defaults.
const (
	DefaultTicketPattern = "[A-Z]+-[0-9]+"
	DefaultMainBranch    = "main"
	DefaultRemote        = "origin"
)

// Config holds the resolved gg configuration.
type Config struct {
	TicketPattern  string `toml:"ticket_pattern"`
	DefaultTicket  string `toml:"default_ticket"`
	TicketRequired bool   `toml:"ticket_required"`
	SmartCommit    bool   `toml:"smart_commit"`
	MainBranch     string `toml:"main_branch"`
	Remote         string `toml:"remote"`

	sources map[string]string
}

// Option is a single configuration option with its resolved value and
// where it came from.
type Option struct {
	Name   string
	EnvVar string
	Value  string
	Source string
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TicketPattern: DefaultTicketPattern,
		SmartCommit:   true,
		MainBranch:    DefaultMainBranch,
		Remote:        DefaultRemote,
		sources: map[string]string{
			"ticket_pattern":  SourceDefault,
			"default_ticket":  SourceDefault,
			"ticket_required": SourceDefault,
			"smart_commit":    SourceDefault,
			"main_branch":     SourceDefault,
			"remote":          SourceDefault,
		},
	}
}

// configPath returns the path to the config file, honoring XDG_CONFIG_HOME.
func configPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gg", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gg", "config.toml"), nil
}

// Load resolves the configuration: defaults, overridden by the config
// file when present, overridden by GG_* environment variables.
// A missing config file is not an error; a malformed file or environment
// value is. A malformed file falls back to defaults; a malformed
// environment value keeps everything resolved so far, so one bad
// variable does not discard valid file settings.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err == nil {
		if err := cfg.applyFile(path); err != nil {
			return Default(), err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// fileConfig mirrors Config for TOML parsing with optional fields, so an
// absent key is distinguishable from an explicit zero value.
type fileConfig struct {
	TicketPattern  *string `toml:"ticket_pattern"`
	DefaultTicket  *string `toml:"default_ticket"`
	TicketRequired *bool   `toml:"ticket_required"`
	SmartCommit    *bool   `toml:"smart_commit"`
	MainBranch     *string `toml:"main_branch"`
	Remote         *string `toml:"remote"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if raw.TicketPattern != nil {
		c.TicketPattern = *raw.TicketPattern
		c.sources["ticket_pattern"] = SourceFile
	}
	if raw.DefaultTicket != nil {
		c.DefaultTicket = *raw.DefaultTicket
		c.sources["default_ticket"] = SourceFile
	}
	if raw.TicketRequired != nil {
		c.TicketRequired = *raw.TicketRequired
		c.sources["ticket_required"] = SourceFile
	}
	if raw.SmartCommit != nil {
		c.SmartCommit = *raw.SmartCommit
		c.sources["smart_commit"] = SourceFile
	}
	if raw.MainBranch != nil {
		c.MainBranch = *raw.MainBranch
		c.sources["main_branch"] = SourceFile
	}
	if raw.Remote != nil {
		c.Remote = *raw.Remote
		c.sources["remote"] = SourceFile
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString := func(envVar, key string, dst *string) {
		if v, ok := os.LookupEnv(envVar); ok {
			*dst = v
			c.sources[key] = SourceEnv
		}
	}

	setString("GG_TICKET_PATTERN", "ticket_pattern", &c.TicketPattern)
	setString("GG_DEFAULT_TICKET", "default_ticket", &c.DefaultTicket)
	setString("GG_MAIN_BRANCH", "main_branch", &c.MainBranch)
	setString("GG_REMOTE", "remote", &c.Remote)

	for _, b := range []struct {
		envVar string
		key    string
		dst    *bool
	}{
		{"GG_TICKET_REQUIRED", "ticket_required", &c.TicketRequired},
		{"GG_SMART_COMMIT", "smart_commit", &c.SmartCommit},
	} {
		v, ok := os.LookupEnv(b.envVar)
		if !ok {
			continue
		}
		parsed, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.envVar, err)
		}
		*b.dst = parsed
		c.sources[b.key] = SourceEnv
	}

	return nil
}

// parseBool accepts 1/0, true/false, yes/no (case-insensitive).
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q (use 1/0, true/false, yes/no)", v)
}

// CompileTicketPattern compiles the configured ticket pattern.
func (c *Config) CompileTicketPattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.TicketPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket pattern %q: %w", c.TicketPattern, err)
	}
	return re, nil
}

// Options returns every configuration option with its resolved value and
// source, in a stable order.
func (c *Config) Options() []Option {
	return []Option{
		{"ticket_pattern", "GG_TICKET_PATTERN", c.TicketPattern, c.source("ticket_pattern")},
		{"default_ticket", "GG_DEFAULT_TICKET", c.DefaultTicket, c.source("default_ticket")},
		{"ticket_required", "GG_TICKET_REQUIRED", fmt.Sprintf("%v", c.TicketRequired), c.source("ticket_required")},
		{"smart_commit", "GG_SMART_COMMIT", fmt.Sprintf("%v", c.SmartCommit), c.source("smart_commit")},
		{"main_branch", "GG_MAIN_BRANCH", c.MainBranch, c.source("main_branch")},
		{"remote", "GG_REMOTE", c.Remote, c.source("remote")},
	}
}

func (c *Config) source(key string) string {
	if c.sources == nil {
		return SourceDefault
	}
	if s, ok := c.sources[key]; ok {
		return s
	}
	return SourceDefault
}

const defaultConfig = `# gg configuration
#
# Every option can also be set through the environment variable named in
# parentheses; the environment wins over this file.

# Regular expression used to extract a ticket identifier from the current
# branch name. (GG_TICKET_PATTERN)
# ticket_pattern = "[A-Z]+-[0-9]+"

# Ticket used when the branch name contains no match. Leave empty to
# commit without a prefix. (GG_DEFAULT_TICKET)
# default_ticket = ""

# Refuse to commit when no ticket can be extracted. (GG_TICKET_REQUIRED)
# ticket_required = false

# Prefix commit messages with the extracted ticket. Disable to commit
# messages verbatim. (GG_SMART_COMMIT)
# smart_commit = true

# Branch that gg main switches to and pulls. (GG_MAIN_BRANCH)
# main_branch = "main"

# Remote used by pull, push and diff-branch. (GG_REMOTE)
# remote = "origin"
`

// Init creates a default config file at the config path.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
