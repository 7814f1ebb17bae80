package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gg/internal/config"
	"github.com/raphi011/gg/internal/output"
)

func newConfigCmd() *cobra.Command {
	var initFile bool
	var force bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the resolved configuration",
		GroupID: GroupInfo,
		Args:    cobra.ArbitraryArgs,
		Long: `Print every configuration option with its resolved value and where
it came from (default, config file, or environment variable).

With --init, write a commented default config file instead.`,
		Example: `  gg config
  gg config --init   # create ~/.config/gg/config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "config takes no arguments, got %d", len(args))
			}

			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if initFile {
				path, err := config.Init(force)
				if err != nil {
					return err
				}
				out.Println(path)
				return nil
			}

			cfg := config.FromContext(ctx)
			for _, opt := range cfg.Options() {
				out.Printf("%-16s = %-24q (%s, %s)\n", opt.Name, opt.Value, opt.Source, opt.EnvVar)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
