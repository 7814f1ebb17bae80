// Package slug derives ref-safe branch names from free-text descriptions.
package slug

import "strings"

// MaxLength caps generated slugs.
const MaxLength = 50

// Make normalizes free text into a branch slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single "-", leading and
// trailing separators stripped, truncated to MaxLength.
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSep := false
	for _, r := range strings.ToLower(text) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	// Separators are written lazily before the next alphanumeric rune, so
	// the built string never starts or ends with one. Truncation happens
	// last and caps the final slug at exactly MaxLength characters, even
	// when that leaves a trailing separator.
	s := b.String()
	if len(s) > MaxLength {
		s = s[:MaxLength]
	}
	return s
}
