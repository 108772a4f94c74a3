package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/render"
)

// maxPayload caps how much of stdin is read.
const maxPayload = 1 << 20

type renderOptions struct {
	dir      string
	atMillis int64
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	s, err := loadSession(cmd, flags)
	if err != nil {
		return err
	}

	log, _ := s.log.ForRender()

	raw, err := readPayload(cmd.InOrStdin())
	if err != nil {
		log.Error(err, "stdin unreadable, using defaults")
	}
	in := input.Normalize(raw)

	now := time.Now()
	if cmd.Flags().Changed("at") {
		now = time.UnixMilli(opts.atMillis)
	}

	dir := repoDir(opts.dir, in)
	collector := gitstate.New(s.cfg.Repo.Backend, s.cfg.Timeout(), log)
	repo := collector.Collect(cmd.Context(), dir)

	log.WithFields(map[string]any{
		"dir":     dir,
		"is_repo": repo.IsRepo,
		"context": in.ContextPct,
	}).Debug("rendering")

	out := render.RenderTheme(render.Request{
		ThemeName:   s.themeName,
		AllowHidden: s.cfg.HiddenModes,
		Input:       in,
		Repo:        repo,
		Now:         now,
		ChipStyle:   s.chipStyle,
		Overrides:   s.overrides,
		Log:         log,
	})

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// readPayload reads the telemetry document. A terminal on stdin means no
// payload was piped, so nothing is read.
func readPayload(r io.Reader) ([]byte, error) {
	if r == nil || isTerminal(r) {
		return nil, nil
	}
	return io.ReadAll(io.LimitReader(r, maxPayload))
}

func isTerminal(r io.Reader) bool {
	if file, ok := r.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// repoDir picks the directory to inspect: --dir, then the workspace from the
// payload, then the process working directory.
func repoDir(flagDir string, in input.RenderInput) string {
	if flagDir != "" {
		return flagDir
	}
	if in.WorkDir != "" {
		return in.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
