package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and punctuation", "Fix Login Bug!!", "fix-login-bug"},
		{"already a slug", "fix-login-bug", "fix-login-bug"},
		{"leading and trailing junk", "  --Fix it-- ", "fix-it"},
		{"collapses runs", "fix -- the / thing", "fix-the-thing"},
		{"uppercase", "ADD OAUTH", "add-oauth"},
		{"digits kept", "bump v2 to 3", "bump-v2-to-3"},
		{"only junk", "!!! ???", ""},
		{"empty", "", ""},
		{"unicode stripped", "fix café menu", "fix-caf-menu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeTruncatesToMaxLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 20) // 99 slug chars
	got := Make(long)
	if len(got) != MaxLength {
		t.Errorf("len(Make(long)) = %d, want %d (%q)", len(got), MaxLength, got)
	}
}

func TestMakeShortInputNotPadded(t *testing.T) {
	t.Parallel()

	if got := Make("short"); got != "short" {
		t.Errorf("Make(short) = %q", got)
	}
}
