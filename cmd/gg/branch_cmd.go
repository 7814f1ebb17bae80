package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
	"github.com/raphi011/gg/internal/output"
	"github.com/raphi011/gg/internal/slug"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "branch <description>...",
		Short:   "Create a branch from a description",
		Aliases: []string{"b"},
		GroupID: GroupBranch,
		Args:    cobra.ArbitraryArgs,
		Long: `Derive a ref-safe branch name from a free-text description and
switch to it, creating the branch if it does not exist.

The description is lowercased, runs of non-alphanumeric characters are
collapsed to single dashes, and the result is capped at 50 characters.`,
		Example: `  gg branch Fix login bug        # switches to fix-login-bug
  gg branch "PROJ-42: add OAuth" # switches to proj-42-add-oauth`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(cmd, "branch needs a description")
			}

			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			name := slug.Make(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("description %q yields an empty branch name", strings.Join(args, " "))
			}

			if git.BranchExists(ctx, name) {
				l.Debug("branch exists", "name", name)
				if err := git.Checkout(ctx, name); err != nil {
					return err
				}
				out.Println(name)
				return nil
			}

			if err := git.CheckoutNew(ctx, name); err != nil {
				return err
			}
			out.Println(name)
			return nil
		},
	}
}
