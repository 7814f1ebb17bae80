package main

import (
	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout [branch]",
		Short:   "Switch branch, or list recent branches",
		Aliases: []string{"co"},
		GroupID: GroupBranch,
		Args:    cobra.ArbitraryArgs,
		Long: `With a branch name: switch to it, offering to create it when it
does not exist. Refuses to switch while the working tree has uncommitted
modifications.

Without arguments: list local branches, most recently committed first,
capped at 15.`,
		Example: `  gg checkout                # list recent branches
  gg checkout fix-login-bug  # switch (or create after confirmation)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return listRecentBranches(cmd.Context())
			case 1:
				return checkoutBranch(cmd.Context(), args[0])
			default:
				return usageError(cmd, "checkout takes at most one branch argument, got %d", len(args))
			}
		},
	}
}

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "switch [filter]",
		Short:   "Pick a recent branch from a menu",
		Aliases: []string{"i"},
		GroupID: GroupBranch,
		Args:    cobra.ArbitraryArgs,
		Long: `Present recent branches as a numbered menu and switch to the
selection. With a filter, matching remote-tracking branches are listed
too. Cancelling the menu leaves the current branch unchanged.`,
		Example: `  gg switch          # menu of the 15 most recent local branches
  gg switch login    # local + remote branches matching "login"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			switch len(args) {
			case 0:
			case 1:
				filter = args[0]
			default:
				return usageError(cmd, "switch takes at most one filter argument, got %d", len(args))
			}
			return switchInteractive(cmd.Context(), filter)
		},
	}
}
