package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:           "prismline",
		Short:         "Prismline renders a colorful status display for coding sessions",
		Long:          "Prismline reads session telemetry as JSON on stdin and prints a themed, optionally animated status display.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config.yaml (default: user config dir)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme name, overrides config and PRISMLINE_THEME")

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory to inspect for repository state (default: workspace dir from input)")
	cmd.Flags().Int64Var(&opts.atMillis, "at", 0, "Render at a fixed instant, in Unix milliseconds")

	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
