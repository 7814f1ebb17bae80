//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/log"
	"github.com/raphi011/gg/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command in dir, failing the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	return runGitCommandEnv(t, dir, nil, args...)
}

// runGitCommandEnv runs a git command with extra environment variables.
func runGitCommandEnv(t *testing.T, dir string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = append(os.Environ(), env...)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit on main in
// dir/name. Returns the absolute path to the created repo.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "init", "-b", "main")
	runGitCommand(t, repoPath, "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "add", "README.md")
	runGitCommand(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// setupRemote creates a bare repo next to repoPath, adds it as origin,
// and pushes main so pulls and upstream checks work.
func setupRemote(t *testing.T, repoPath string) string {
	t.Helper()

	remotePath := repoPath + "-origin.git"
	runGitCommand(t, filepath.Dir(repoPath), "init", "--bare", "-b", "main", remotePath)
	runGitCommand(t, repoPath, "remote", "add", "origin", remotePath)
	runGitCommand(t, repoPath, "push", "-u", "origin", "main")
	return remotePath
}

// makeDirty modifies a tracked file without committing.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()
	path := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(path, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to dirty worktree: %v", err)
	}
}

// writeFile creates or overwrites a file inside the repo.
func writeFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// currentBranch returns the repo's current branch.
func currentBranch(t *testing.T, repoPath string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, repoPath, "branch", "--show-current"))
}

// lastSubject returns the subject line of the last commit.
func lastSubject(t *testing.T, repoPath string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, repoPath, "log", "-1", "--format=%s"))
}

// commitCount returns the number of commits on HEAD.
func commitCount(t *testing.T, repoPath string) string {
	t.Helper()
	return strings.TrimSpace(runGitCommand(t, repoPath, "rev-list", "--count", "HEAD"))
}

// testContext builds a command context with the given config, a discard
// logger, and a captured output buffer. It also enters the repo, since
// gg operates on the working directory.
func testContext(t *testing.T, repoPath string, cfg *config.Config) (context.Context, *bytes.Buffer) {
	t.Helper()

	t.Chdir(repoPath)

	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = config.WithConfig(ctx, cfg)
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// withStdin replaces os.Stdin with a pipe carrying the given input for
// the duration of the test, so prompts read scripted answers.
func withStdin(t *testing.T, input string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("failed to write stdin: %v", err)
	}
	w.Close()

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})
}
