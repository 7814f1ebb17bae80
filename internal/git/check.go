package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for the distinct precondition failures.
var (
	// ErrGitNotFound indicates git is not installed or not in PATH.
	ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

	// ErrNotARepository indicates the working directory is not inside a git repository.
	ErrNotARepository = fmt.Errorf("not a git repository (run gg inside a repository)")

	// ErrDetachedHead indicates HEAD is not on a named branch.
	ErrDetachedHead = fmt.Errorf("detached HEAD: check out a branch first")

	// ErrDirtyWorktree indicates uncommitted changes block a branch switch.
	ErrDirtyWorktree = fmt.Errorf("uncommitted changes in working tree: commit or stash them first")
)

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// RequireRepo returns ErrNotARepository unless the working directory is
// inside a git repository.
func RequireRepo(ctx context.Context) error {
	if err := runGit(ctx, "", "rev-parse", "--is-inside-work-tree"); err != nil {
		return ErrNotARepository
	}
	return nil
}

// CurrentBranch returns the current branch name.
// Returns ErrDetachedHead when HEAD is not on a named branch.
func CurrentBranch(ctx context.Context) (string, error) {
	output, err := outputGit(ctx, "", "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// IsDirty returns true if the worktree has uncommitted modifications to
// tracked files. Untracked files do not count: they survive a branch
// switch and must not block one.
func IsDirty(ctx context.Context) bool {
	output, err := outputGit(ctx, "", "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false // treat error as clean, the following git call will surface it
	}
	return strings.TrimSpace(string(output)) != ""
}

// RequireClean returns ErrDirtyWorktree when the worktree has uncommitted
// changes. Commands that switch branches call this before touching state.
func RequireClean(ctx context.Context) error {
	if IsDirty(ctx) {
		return ErrDirtyWorktree
	}
	return nil
}
