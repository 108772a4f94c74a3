package preview

import (
	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
)

// SamplePayload is a representative telemetry document for previews run
// without piped input.
const SamplePayload = `{
  "model": {"display_name": "Opus"},
  "workspace": {"current_dir": "/home/dev/prismline"},
  "context_window": {"used_percentage": 58},
  "cost": {"total_duration_ms": 2712000, "total_lines_added": 214, "total_lines_removed": 37},
  "rate": {"time_left": "1h42m", "reset_time": "17:00", "limit_pct": 64, "burn_rate": "3.1k tok/min"}
}`

// SampleInput is SamplePayload normalized.
func SampleInput() input.RenderInput {
	return input.NormalizeString(SamplePayload)
}

// SampleRepo is a dirty repository ahead of its upstream.
func SampleRepo() gitstate.State {
	return gitstate.State{
		IsRepo:      true,
		Branch:      "main",
		Worktree:    "prismline",
		Added:       1,
		Modified:    4,
		Deleted:     0,
		Ahead:       2,
		Behind:      0,
		HasUpstream: true,
	}
}
