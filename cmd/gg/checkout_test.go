package main

import (
	"strings"
	"testing"
	"time"

	"github.com/raphi011/gg/internal/git"
)

func TestFormatBranchLine(t *testing.T) {
	t.Parallel()

	b := git.Branch{
		Name:        "feature/PROJ-42-login",
		Hash:        "abc1234",
		CommittedAt: time.Unix(1700000000, 0),
		Relative:    "2 days ago",
	}

	t.Run("current branch is marked", func(t *testing.T) {
		t.Parallel()
		line := formatBranchLine(b, "feature/PROJ-42-login", false)
		if !strings.HasPrefix(line, "* ") {
			t.Errorf("line = %q, want * marker", line)
		}
	})

	t.Run("other branch unmarked", func(t *testing.T) {
		t.Parallel()
		line := formatBranchLine(b, "main", false)
		if strings.HasPrefix(line, "* ") {
			t.Errorf("line = %q, want no marker", line)
		}
		for _, part := range []string{"feature/PROJ-42-login", "abc1234", "2 days ago"} {
			if !strings.Contains(line, part) {
				t.Errorf("line = %q, want it to contain %q", line, part)
			}
		}
	})
}
