package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/preview"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

type previewOptions struct {
	sample bool
	hidden bool
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a live animated preview of the themes",
		Long:  "Re-renders the status display every 100ms. Use n/p to cycle themes, s to toggle the chip style and q to quit. The custom colors file is reloaded when it changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Use sample repository state instead of the current directory")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "Include hidden animation modes")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewOptions) error {
	s, err := loadSession(cmd, flags)
	if err != nil {
		return err
	}

	allowHidden := opts.hidden || s.cfg.HiddenModes
	in := preview.SampleInput()
	repo := preview.SampleRepo()
	if !opts.sample {
		dir := repoDir("", input.RenderInput{})
		repo = gitstate.New(s.cfg.Repo.Backend, s.cfg.Timeout(), s.log).Collect(cmd.Context(), dir)
		if repo.IsRepo {
			in.Dir = repo.Worktree
		}
	}

	m := preview.NewModel(preview.Options{
		Themes:      theme.Names(allowHidden),
		Start:       s.themeName,
		AllowHidden: allowHidden,
		ChipStyle:   s.chipStyle,
		Input:       in,
		Repo:        repo,
		ColorsPath:  s.colorsPath,
		Overrides:   s.overrides,
		Log:         s.log,
	})

	m, stop, err := m.Watch()
	if err != nil {
		s.log.WithFields(map[string]any{"path": s.colorsPath}).Error(err, "custom colors will not be reloaded")
	}
	defer stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	return nil
}
