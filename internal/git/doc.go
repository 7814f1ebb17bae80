// Package git wraps the git binary for the operations gg shortcuts.
//
// Every function is a thin, synchronous delegation to a single git
// invocation; git owns all persistent state and atomicity guarantees.
package git
