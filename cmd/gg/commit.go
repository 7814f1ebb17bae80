package main

import (
	"context"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/ticket"
)

// commitWithTicket applies the smart-commit rules to the message and
// creates the commit. Shared by the commit command and add's
// stage-and-commit shortcut.
func commitWithTicket(ctx context.Context, message string) error {
	msg, err := resolveMessage(ctx, message)
	if err != nil {
		return err
	}
	return git.Commit(ctx, msg)
}

// resolveMessage prefixes the message with the ticket extracted from the
// current branch. With smart commit disabled, the message passes through
// verbatim and the branch is never inspected.
func resolveMessage(ctx context.Context, message string) (string, error) {
	cfg := config.FromContext(ctx)
	if !cfg.SmartCommit {
		return message, nil
	}

	branch, err := git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}

	tkt, err := ticket.Resolve(branch, cfg)
	if err != nil {
		return "", err
	}

	return ticket.Prefix(message, tkt), nil
}
