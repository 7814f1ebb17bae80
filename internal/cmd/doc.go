// Package cmd provides helpers for executing external commands with
// proper error handling and verbose logging.
package cmd
