package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/git"
	"github.com/raphi011/gg/internal/log"
	"github.com/raphi011/gg/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCommit = "commit"
	GroupBranch = "branch"
	GroupSync   = "sync"
	GroupInfo   = "info"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gg",
	Short: "Git shortcuts with ticket-aware commits",
	Long: `gg shortcuts the everyday git operations: status, diff, pull, push,
branch switching, and commits prefixed with the ticket extracted from the
current branch name.

Anything gg does not recognize is forwarded verbatim to git, so gg can
fully replace git on the command line.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip checks for completion and help commands
		if name := cmd.Name(); name == "completion" || name == "__complete" || name == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available and we are inside a repository
		if err := git.CheckGit(); err != nil {
			return err
		}
		return git.RequireRepo(cmd.Context())
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute sets up the shared context, dispatches known commands through
// cobra, and forwards everything else verbatim to git.
func Execute() {
	args := os.Args[1:]

	// The dispatch decision comes first: for a forwarded command, gg's
	// own flags are only recognized before the subcommand. Anything after
	// it belongs to git, even when it collides with gg's flags
	// (git remote -v, git fetch -q).
	sub, subIdx := firstPositional(args)
	forward := sub != "" && !knownCommand(sub)

	// Global flags are needed before cobra parses them: the logger is
	// created up front and the passthrough decision happens pre-dispatch.
	ownFlags := args
	if forward {
		ownFlags = args[:subIdx]
	}
	for _, a := range ownFlags {
		switch a {
		case "-v", "--verbose":
			verbose = true
		case "-q", "--quiet":
			quiet = true
		}
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	ctx = config.WithConfig(ctx, &loadedCfg)

	// Unknown commands are not an error: the full argument list goes to
	// git and its exit code is propagated. This is an explicit default
	// branch of the dispatch, not an error path.
	if forward {
		if err := git.CheckGit(); err != nil {
			fatal(err)
		}
		if err := git.RequireRepo(ctx); err != nil {
			fatal(err)
		}
		logger.Debug("passthrough", "command", sub)
		os.Exit(git.Passthrough(ctx, forwardedArgs(args, subIdx)))
	}

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gg -h' for help")
		os.Exit(1)
	}
}

// fatal prints a precondition error and exits non-zero.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// globalFlags are gg's own flags, excluded from forwarded argument lists.
var globalFlags = []string{"-v", "--verbose", "-q", "--quiet"}

// firstPositional returns the first argument that is not one of gg's
// global flags and not flag-shaped, along with its index. Returns
// ("", len(args)) if there is none.
func firstPositional(args []string) (string, int) {
	for i, a := range args {
		if slices.Contains(globalFlags, a) {
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			continue
		}
		return a, i
	}
	return "", len(args)
}

// forwardedArgs builds the argument list passed to git: gg's own flags
// are stripped from the portion before the subcommand at subIdx, and
// everything from the subcommand on is kept verbatim so git's flags
// reach git even when they look like gg's (git remote -v).
func forwardedArgs(args []string, subIdx int) []string {
	forwarded := make([]string, 0, len(args))
	for _, a := range args[:subIdx] {
		if slices.Contains(globalFlags, a) {
			continue
		}
		forwarded = append(forwarded, a)
	}
	return append(forwarded, args[subIdx:]...)
}

// knownCommand reports whether name matches a registered command or one
// of its aliases.
func knownCommand(name string) bool {
	switch name {
	case "help", "completion", "__complete", "__completeNoDesc":
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || slices.Contains(c.Aliases, name) {
			return true
		}
	}
	return false
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCommit, Title: "Commit Commands:"},
		&cobra.Group{ID: GroupBranch, Title: "Branch Commands:"},
		&cobra.Group{ID: GroupSync, Title: "Sync Commands:"},
		&cobra.Group{ID: GroupInfo, Title: "Info Commands:"},
	)

	// Commit commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newAddPathCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newTicketCmd())

	// Branch commands
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newMainCmd())

	// Sync commands
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newPushCmd())

	// Info commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newDiffBranchCmd())
	rootCmd.AddCommand(newConfigCmd())
}
