package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
)

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   "Pull the current branch",
		Aliases: []string{"pl"},
		GroupID: GroupSync,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "pull takes no arguments, got %d", len(args))
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			branch, err := git.CurrentBranch(ctx)
			if err != nil {
				return err
			}
			return git.Pull(ctx, cfg.Remote, branch)
		},
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "push",
		Short:   "Push the current branch, setting upstream",
		Aliases: []string{"ps"},
		GroupID: GroupSync,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "push takes no arguments, got %d", len(args))
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			branch, err := git.CurrentBranch(ctx)
			if err != nil {
				return err
			}
			return git.Push(ctx, cfg.Remote, branch)
		},
	}
}

func newMainCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "main",
		Short:   "Switch to the main branch and pull",
		Aliases: []string{"m"},
		GroupID: GroupBranch,
		Args:    cobra.ArbitraryArgs,
		Long: `Switch to the configured main branch and pull it. Already being on
the main branch skips the switch. The switch refuses a dirty worktree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "main takes no arguments, got %d", len(args))
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			branch, err := git.CurrentBranch(ctx)
			if err != nil {
				return err
			}

			if branch != cfg.MainBranch {
				if err := git.RequireClean(ctx); err != nil {
					return err
				}
				if err := git.Checkout(ctx, cfg.MainBranch); err != nil {
					return err
				}
			} else {
				l.Debug("already on main branch", "branch", branch)
			}

			return git.Pull(ctx, cfg.Remote, cfg.MainBranch)
		},
	}
}
