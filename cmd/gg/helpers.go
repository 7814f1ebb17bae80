package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// usageError reports an argument mistake: a short diagnostic followed by
// the command's usage text. It returns nil because usage is advisory and
// the process exits 0.
func usageError(cmd *cobra.Command, format string, args ...any) error {
	fmt.Fprintf(os.Stderr, format+"\n\n", args...)
	_ = cmd.Usage()
	return nil
}
