package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/gg/internal/cmd"
)

// StageTracked stages all modifications to tracked files (git add -u).
func StageTracked(ctx context.Context) error {
	return runGit(ctx, "", "add", "-u")
}

// StagePath stages exactly the given path or pattern.
func StagePath(ctx context.Context, path string) error {
	return runGit(ctx, "", "add", "--", path)
}

// UntrackedFiles returns the untracked (non-ignored) files in the worktree.
func UntrackedFiles(ctx context.Context) ([]string, error) {
	output, err := outputGit(ctx, "", "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %v", err)
	}
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// Commit creates a commit with the given message. Git's own output is
// streamed so hook and summary output reach the user unmodified.
func Commit(ctx context.Context, message string) error {
	return streamGit(ctx, "", "commit", "-m", message)
}

// Checkout switches to an existing branch.
func Checkout(ctx context.Context, branch string) error {
	return streamGit(ctx, "", "checkout", branch)
}

// CheckoutNew creates a branch and switches to it.
func CheckoutNew(ctx context.Context, branch string) error {
	return streamGit(ctx, "", "checkout", "-b", branch)
}

// BranchExists returns true if a local branch with the given name exists.
func BranchExists(ctx context.Context, branch string) bool {
	return runGit(ctx, "", "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// Pull pulls the given branch from the remote.
func Pull(ctx context.Context, remote, branch string) error {
	return streamGit(ctx, "", "pull", remote, branch)
}

// Push pushes the given branch to the remote, setting upstream tracking.
func Push(ctx context.Context, remote, branch string) error {
	return streamGit(ctx, "", "push", "--set-upstream", remote, branch)
}

// StatusShort shows the short-form status.
func StatusShort(ctx context.Context) error {
	return streamGit(ctx, "", "status", "--short")
}

// DiffAll shows unstaged and then staged differences.
func DiffAll(ctx context.Context) error {
	if err := streamGit(ctx, "", "diff"); err != nil {
		return err
	}
	return streamGit(ctx, "", "diff", "--staged")
}

// LogAhead shows the commits unique to HEAD relative to the given ref.
func LogAhead(ctx context.Context, ref string) error {
	return streamGit(ctx, "", "log", "--oneline", ref+"..HEAD")
}

// Passthrough forwards the full argument list verbatim to git with the
// parent's stdio wired through, returning git's exit code.
func Passthrough(ctx context.Context, args []string) int {
	err := streamGit(ctx, "", args...)
	return cmd.ExitCode(err)
}
