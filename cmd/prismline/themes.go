package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginTop(1)

	nameStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Width(32)

	currentStyle = nameStyle.
			Foreground(lipgloss.Color("212")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

type themesOptions struct {
	hidden bool
	plain  bool
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List valid theme names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "Include hidden animation modes")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "One name per line, no grouping")

	return cmd
}

func runThemes(cmd *cobra.Command, flags *rootFlags, opts *themesOptions) error {
	s, err := loadSession(cmd, flags)
	if err != nil {
		return err
	}

	names := theme.Names(opts.hidden || s.cfg.HiddenModes)
	out := cmd.OutOrStdout()

	if opts.plain {
		_, err := fmt.Fprintln(out, strings.Join(names, "\n"))
		return err
	}

	groups := make(map[theme.Layout][]string, len(theme.Layouts))
	for _, name := range names {
		layout := theme.Parse(name).Layout
		groups[layout] = append(groups[layout], name)
	}

	var b strings.Builder
	for _, layout := range theme.Layouts {
		b.WriteString(headingStyle.Render(fmt.Sprintf("%s (%d lines)", layout, layout.Lines())))
		b.WriteString("\n")
		for _, name := range groups[layout] {
			style := nameStyle
			if name == s.themeName {
				style = currentStyle
			}
			b.WriteString(style.Render(name))
			b.WriteString("\n")
		}
	}
	b.WriteString(countStyle.Render(fmt.Sprintf("%d themes", len(names))))
	b.WriteString("\n")

	_, err = fmt.Fprint(out, b.String())
	return err
}
