// Package styles provides shared lipgloss styles for gg's terminal output.
package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Colors used throughout the UI.
var (
	// Accent highlights selected/active items (pink).
	Accent = lipgloss.Color("212")

	// Muted is used for secondary text like relative dates (gray).
	Muted = lipgloss.Color("240")
)

// Common styles.
var (
	// AccentStyle applies the accent color with bold.
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// MutedStyle applies the muted color.
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Colorized reports whether the given file supports colored output,
// based on terminal color profile detection.
func Colorized(f *os.File) bool {
	return colorprofile.Detect(f, os.Environ()) != colorprofile.NoTTY
}
