package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
	apperrors "github.com/alexisbeaulieu97/prismline/pkg/errors"
)

func newParseCmd() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "parse <theme>",
		Short: "Show how a theme name decomposes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], hidden)
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Accept hidden animation modes")

	return cmd
}

func runParse(cmd *cobra.Command, name string, hidden bool) error {
	d := theme.Parse(name)
	if !d.Valid() {
		return apperrors.NewThemeError(name, "no layout matches this name")
	}
	if d.Animation.Hidden() && !hidden {
		return apperrors.NewThemeError(name, fmt.Sprintf("animation %s is hidden, pass --hidden", d.Animation))
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"name:      %s\ncolor:     %s\nanimation: %s\nlayout:    %s\nicons:     %s\nlines:     %d\n",
		theme.Canonical(d), d.Color, d.Animation, d.Layout, d.Icon, d.Layout.Lines())
	return err
}
