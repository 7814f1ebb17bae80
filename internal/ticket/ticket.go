// Package ticket extracts issue-tracker ticket identifiers from branch
// names and applies them to commit messages.
package ticket

import (
	"fmt"
	"strings"

	"github.com/raphi011/gg/internal/config"
)

// ErrTicketRequired indicates that ticket_required is set but the current
// branch name contains no ticket.
var ErrTicketRequired = fmt.Errorf("no ticket found in branch name (ticket_required is set)")

// Resolve extracts the ticket identifier from a branch name.
//
// The configured pattern is searched for its first match, and the match is
// truncated at the first "_". The truncation is a documented compatibility
// rule: patterns with embedded underscores, or a ticket-like token glued
// directly after the real one, resolve by this rule rather than anything
// smarter.
//
// Without a match, the configured default ticket is returned, or
// ErrTicketRequired when ticket_required is set.
func Resolve(branch string, cfg *config.Config) (string, error) {
	re, err := cfg.CompileTicketPattern()
	if err != nil {
		return "", err
	}

	match := re.FindString(branch)
	if match == "" {
		if cfg.TicketRequired {
			return "", ErrTicketRequired
		}
		return cfg.DefaultTicket, nil
	}

	if i := strings.Index(match, "_"); i >= 0 {
		match = match[:i]
	}

	return match, nil
}

// Prefix prepends "[<ticket>] " to the message. An empty ticket leaves
// the message unmodified.
func Prefix(message, ticket string) string {
	if ticket == "" {
		return message
	}
	return fmt.Sprintf("[%s] %s", ticket, message)
}
