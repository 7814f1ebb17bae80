package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show short-form status",
		Aliases: []string{"s"},
		GroupID: GroupInfo,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "status takes no arguments, got %d", len(args))
			}
			return git.StatusShort(cmd.Context())
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diff",
		Short:   "Show unstaged and staged changes",
		Aliases: []string{"d"},
		GroupID: GroupInfo,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "diff takes no arguments, got %d", len(args))
			}
			return git.DiffAll(cmd.Context())
		},
	}
}

func newDiffBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diff-branch [branch]",
		Short:   "Show commits unique to HEAD",
		Aliases: []string{"db"},
		GroupID: GroupInfo,
		Args:    cobra.ArbitraryArgs,
		Long: `Show the commit log unique to HEAD relative to a branch on the
configured remote. Defaults to the configured main branch.`,
		Example: `  gg diff-branch          # commits not on origin/main
  gg diff-branch release  # commits not on origin/release`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			target := cfg.MainBranch
			switch len(args) {
			case 0:
			case 1:
				target = args[0]
			default:
				return usageError(cmd, "diff-branch takes at most one branch argument, got %d", len(args))
			}

			return git.LogAhead(ctx, cfg.Remote+"/"+target)
		},
	}
}
