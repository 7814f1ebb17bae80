package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
	"github.com/raphi011/gg/internal/output"
	"github.com/raphi011/gg/internal/ui/prompt"
	"github.com/raphi011/gg/internal/ui/styles"
)

// branchLimit caps every "most recent branches" listing.
const branchLimit = 15

// listRecentBranches prints local branches, most recently committed
// first, capped at branchLimit.
func listRecentBranches(ctx context.Context) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	branches, err := git.ListBranches(ctx, cfg.Remote, false)
	if err != nil {
		return err
	}
	branches = git.CapBranches(branches, branchLimit)

	current, err := git.CurrentBranch(ctx)
	if err != nil {
		// Detached HEAD just means no branch gets the marker.
		current = ""
	}

	colored := styles.Colorized(os.Stdout)
	for _, b := range branches {
		out.Println(formatBranchLine(b, current, colored))
	}
	return nil
}

// formatBranchLine renders one branch listing line. The current branch is
// marked with "*" and highlighted when color is available.
func formatBranchLine(b git.Branch, current string, colored bool) string {
	marker := "  "
	if b.Name == current {
		marker = "* "
	}

	name := fmt.Sprintf("%-40s", b.Name)
	meta := fmt.Sprintf("%s  %s", b.Hash, b.Relative)

	if !colored {
		return marker + name + " " + meta
	}
	if b.Name == current {
		name = styles.AccentStyle.Render(name)
	}
	return marker + name + " " + styles.MutedStyle.Render(meta)
}

// checkoutBranch switches to the named branch, offering to create it when
// it does not exist. A declined or cancelled prompt changes nothing.
func checkoutBranch(ctx context.Context, name string) error {
	l := log.FromContext(ctx)

	if err := git.RequireClean(ctx); err != nil {
		return err
	}

	if git.BranchExists(ctx, name) {
		return git.Checkout(ctx, name)
	}

	result, err := prompt.Confirm(fmt.Sprintf("Branch %q does not exist. Create it?", name))
	if err != nil {
		return err
	}
	if !result.Confirmed || result.Cancelled {
		l.Println("Aborted, staying on the current branch.")
		return nil
	}

	return git.CheckoutNew(ctx, name)
}

// switchInteractive presents a menu of recent branches matching the
// filter and switches to the selection. With a filter, remote-tracking
// branches are included. A cancelled selection performs no action.
func switchInteractive(ctx context.Context, filter string) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)

	if err := git.RequireClean(ctx); err != nil {
		return err
	}

	includeRemote := filter != ""
	branches, err := git.ListBranches(ctx, cfg.Remote, includeRemote)
	if err != nil {
		return err
	}
	branches = git.FilterBranches(branches, filter)
	branches = git.CapBranches(branches, branchLimit)

	if len(branches) == 0 {
		l.Println("No branches match.")
		return nil
	}

	options := make([]string, len(branches))
	for i, b := range branches {
		label := b.Name
		if b.Remote {
			label += " (" + cfg.Remote + ")"
		}
		options[i] = fmt.Sprintf("%s  %s", label, b.Relative)
	}

	result, err := prompt.Select("Switch to branch", options)
	if err != nil {
		return err
	}
	if result.Cancelled {
		l.Println("Cancelled.")
		return nil
	}

	// Checking out a remote-tracking branch by its short name lets git
	// create the local tracking branch.
	return git.Checkout(ctx, branches[result.Index].Name)
}
