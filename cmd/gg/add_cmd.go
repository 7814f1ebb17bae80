package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add [message]",
		Short:   "Stage all tracked changes",
		Aliases: []string{"a"},
		GroupID: GroupCommit,
		Args:    cobra.ArbitraryArgs,
		Long: `Stage all modifications to tracked files.

Untracked files are never staged; a warning is printed when any exist.
With a message argument, a smart commit follows immediately.`,
		Example: `  gg add                    # stage tracked changes
  gg add "fix login form"   # stage and commit in one step`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError(cmd, "add takes at most one message argument, got %d", len(args))
			}

			ctx := cmd.Context()
			l := log.FromContext(ctx)

			if err := git.StageTracked(ctx); err != nil {
				return err
			}

			if untracked, err := git.UntrackedFiles(ctx); err == nil && len(untracked) > 0 {
				l.Printf("Warning: %d untracked file(s) not staged (stage them with gg add-path)\n", len(untracked))
			}

			if len(args) == 1 {
				return commitWithTicket(ctx, args[0])
			}
			return nil
		},
	}
}

func newAddPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add-path <path>",
		Short:   "Stage a path or pattern",
		Aliases: []string{"ap"},
		GroupID: GroupCommit,
		Args:    cobra.ArbitraryArgs,
		Example: `  gg add-path internal/login.go
  gg add-path "*.md"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(cmd, "add-path takes exactly one path argument, got %d", len(args))
			}
			return git.StagePath(cmd.Context(), args[0])
		},
	}
}
