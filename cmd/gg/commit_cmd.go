package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
	"github.com/raphi011/gg/internal/output"
	"github.com/raphi011/gg/internal/ticket"
)

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "commit <message>",
		Short:   "Commit with ticket prefix",
		Aliases: []string{"c"},
		GroupID: GroupCommit,
		Args:    cobra.ArbitraryArgs,
		Long: `Commit staged changes, prefixing the message with the ticket
extracted from the current branch name (e.g. "[PROJ-42] fix login").

Without a ticket in the branch name, the configured default ticket is
used; an empty one commits the message unmodified. With smart_commit
disabled, the message is always committed verbatim.`,
		Example: `  gg commit "fix login form"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(cmd, "commit takes exactly one message argument, got %d", len(args))
			}
			return commitWithTicket(cmd.Context(), args[0])
		},
	}
}

func newTicketCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "ticket",
		Short:   "Show the ticket for the current branch",
		Aliases: []string{"t"},
		GroupID: GroupCommit,
		Args:    cobra.ArbitraryArgs,
		Long: `Print the ticket identifier that a commit on the current branch
would be prefixed with, without committing anything.`,
		Example: `  gg ticket
  gg ticket --copy   # also copy it to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "ticket takes no arguments, got %d", len(args))
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			branch, err := git.CurrentBranch(ctx)
			if err != nil {
				return err
			}

			tkt, err := ticket.Resolve(branch, cfg)
			if err != nil {
				return err
			}

			if copyToClipboard {
				l := log.FromContext(ctx)
				if err := clipboard.WriteAll(tkt); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Println(tkt)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the ticket to the clipboard")

	return cmd
}
