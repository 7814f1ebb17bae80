//go:build integration

package main

import (
	"strings"
	"testing"
)

// stagedFiles returns the files currently staged.
func stagedFiles(t *testing.T, repoPath string) string {
	t.Helper()
	return runGitCommand(t, repoPath, "diff", "--cached", "--name-only")
}

// TestAdd_StagesTracked tests staging tracked modifications.
//
// Scenario: A tracked file is modified, an untracked one exists
// Expected: Only the tracked file is staged
func TestAdd_StagesTracked(t *testing.T) {
	repoPath := setupTestRepo(t, t.TempDir(), "repo")
	makeDirty(t, repoPath) // modifies tracked README.md
	writeFile(t, repoPath, "scratch.txt", "untracked\n")

	ctx, _ := testContext(t, repoPath, nil)
	cmd := newAddCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	staged := stagedFiles(t, repoPath)
	if !strings.Contains(staged, "README.md") {
		t.Errorf("staged = %q, want README.md", staged)
	}
	if strings.Contains(staged, "scratch.txt") {
		t.Errorf("staged = %q, untracked file must not be staged", staged)
	}
}

// TestAdd_WithMessageCommits tests the stage-and-commit shortcut.
//
// Scenario: gg add "message" on a ticket branch with tracked changes
// Expected: A commit with the ticket-prefixed message exists
func TestAdd_WithMessageCommits(t *testing.T) {
	repoPath := setupTestRepo(t, t.TempDir(), "repo")
	runGitCommand(t, repoPath, "checkout", "-b", "PROJ-3-cleanup")
	makeDirty(t, repoPath)

	ctx, _ := testContext(t, repoPath, nil)
	cmd := newAddCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"tidy readme"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("add with message failed: %v", err)
	}

	if got := lastSubject(t, repoPath); got != "[PROJ-3] tidy readme" {
		t.Errorf("subject = %q, want %q", got, "[PROJ-3] tidy readme")
	}
}

// TestAdd_TooManyArgsShowsUsage tests the advisory arity check.
//
// Scenario: gg add with two arguments
// Expected: Usage shown, no error, nothing staged
func TestAdd_TooManyArgsShowsUsage(t *testing.T) {
	repoPath := setupTestRepo(t, t.TempDir(), "repo")
	makeDirty(t, repoPath)

	ctx, _ := testContext(t, repoPath, nil)
	cmd := newAddCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"two", "messages"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("usage path should not error: %v", err)
	}

	if staged := strings.TrimSpace(stagedFiles(t, repoPath)); staged != "" {
		t.Errorf("staged = %q, usage must not stage", staged)
	}
}

// TestAddPath_StagesExactPath tests staging a single path.
//
// Scenario: gg add-path scratch.txt with several new files
// Expected: Only scratch.txt is staged
func TestAddPath_StagesExactPath(t *testing.T) {
	repoPath := setupTestRepo(t, t.TempDir(), "repo")
	writeFile(t, repoPath, "scratch.txt", "one\n")
	writeFile(t, repoPath, "other.txt", "two\n")

	ctx, _ := testContext(t, repoPath, nil)
	cmd := newAddPathCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"scratch.txt"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("add-path failed: %v", err)
	}

	staged := stagedFiles(t, repoPath)
	if !strings.Contains(staged, "scratch.txt") {
		t.Errorf("staged = %q, want scratch.txt", staged)
	}
	if strings.Contains(staged, "other.txt") {
		t.Errorf("staged = %q, other.txt must not be staged", staged)
	}
}

// TestAddPath_MissingArgShowsUsage tests the advisory arity check.
//
// Scenario: gg add-path without a path
// Expected: Usage shown, no error
func TestAddPath_MissingArgShowsUsage(t *testing.T) {
	repoPath := setupTestRepo(t, t.TempDir(), "repo")

	ctx, _ := testContext(t, repoPath, nil)
	cmd := newAddPathCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("usage path should not error: %v", err)
	}
}
