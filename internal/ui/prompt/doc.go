// Package prompt provides the interactive terminal prompts gg uses:
// a yes/no confirmation and a numbered list selection.
//
// Prompts render on stderr so stdout stays clean for piped output. When
// stdin is not a terminal, each prompt degrades to a plain line-based
// read so scripted input keeps working.
package prompt
