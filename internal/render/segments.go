package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/palette"
)

const notAvailable = "---"

// segment is one logical field of the display. text is plain; the layouts
// decide how to color it.
type segment struct {
	text  string
	fg    colors.Role
	bg    colors.Role
	phase int
	// styled, when set, replaces the default inline coloring.
	styled func(c *Context, text string) string
}

func (s segment) empty() bool {
	return s.text == ""
}

// inline renders a segment for the line layouts.
func (c *Context) inline(s segment) string {
	if s.styled != nil {
		return s.styled(c, s.text)
	}
	return c.fg(s.text, s.fg, s.phase)
}

// block renders a segment as a background bar for the bars layout.
func (c *Context) block(s segment) string {
	text := " " + s.text + " "
	if c.pal == nil {
		return c.Table.Seq(s.bg) + c.Table.Seq(s.fg) + text + palette.Reset
	}
	return Sparkle(text, c.chipText(s.fg), s.phase, c.Offsets.Bg, c.pal)
}

// badge renders a segment as a chip for the badges layout.
func (c *Context) badge(s segment) string {
	return Chip(s.text, c.chipText(s.fg), c.bg(s.bg, s.phase), c.ChipStyle)
}

func withIcon(icon, text string) string {
	if icon == "" {
		return text
	}
	return icon + " " + text
}

func (c *Context) modelSegment() segment {
	return segment{
		text:  withIcon(c.Table.Icons.Model, c.Input.Model),
		fg:    colors.RoleModelFg,
		bg:    colors.RoleModelBg,
		phase: phaseModel,
	}
}

func (c *Context) dirSegment() segment {
	return segment{
		text:  withIcon(c.Table.Icons.Dir, c.Input.Dir),
		fg:    colors.RoleDirFg,
		bg:    colors.RoleDirBg,
		phase: phaseDir,
	}
}

func (c *Context) branchSegment() segment {
	s := segment{fg: colors.RoleBranchFg, bg: colors.RoleBranchBg, phase: phaseBranch}
	if !c.Repo.IsRepo || c.Repo.Branch == "" {
		s.text = withIcon(c.Table.Icons.Branch, "no repo")
		s.fg = colors.RoleMutedFg
		return s
	}
	s.text = withIcon(c.Table.Icons.Branch, c.Repo.Branch)
	return s
}

func (c *Context) worktreeSegment() segment {
	s := segment{fg: colors.RoleWorktreeFg, bg: colors.RoleWorktreeBg, phase: phaseWorktree}
	if !c.Repo.IsRepo || c.Repo.Worktree == "" {
		s.text = withIcon(c.Table.Icons.Worktree, notAvailable)
		s.fg = colors.RoleMutedFg
		return s
	}
	s.text = withIcon(c.Table.Icons.Worktree, c.Repo.Worktree)
	return s
}

func (c *Context) statusSegment() segment {
	s := segment{fg: colors.RoleStatusFg, bg: colors.RoleStatusBg, phase: phaseStatus}
	switch {
	case !c.Repo.IsRepo:
		s.text = "status: " + notAvailable
		s.fg = colors.RoleMutedFg
	case c.Repo.Clean():
		s.text = withIcon(c.Table.Icons.Clean, "clean")
	default:
		s.text = fmt.Sprintf("+%d ~%d -%d", c.Repo.Added, c.Repo.Modified, c.Repo.Deleted)
		if c.pal == nil {
			s.styled = styledStatus
		}
	}
	return s
}

func styledStatus(c *Context, _ string) string {
	return strings.Join([]string{
		c.flat("+"+strconv.Itoa(c.Repo.Added), colors.RoleAddedFg),
		c.flat("~"+strconv.Itoa(c.Repo.Modified), colors.RoleStatusFg),
		c.flat("-"+strconv.Itoa(c.Repo.Deleted), colors.RoleRemovedFg),
	}, " ")
}

func (c *Context) syncSegment() segment {
	s := segment{fg: colors.RoleSyncFg, bg: colors.RoleSyncBg, phase: phaseSync}
	switch {
	case !c.Repo.IsRepo:
		s.text = "sync: " + notAvailable
		s.fg = colors.RoleMutedFg
	case !c.Repo.HasUpstream:
		s.text = withIcon(c.Table.Icons.Sync, "local")
	default:
		s.text = withIcon(c.Table.Icons.Sync, fmt.Sprintf("%s%d %s%d",
			c.Table.Icons.Ahead, c.Repo.Ahead, c.Table.Icons.Behind, c.Repo.Behind))
	}
	return s
}

// contextSegment keeps the tier emphasis in every animation mode so pressure
// stays readable.
func (c *Context) contextSegment() segment {
	return segment{
		text:  withIcon(c.Table.Icons.Context, strconv.Itoa(c.Input.ContextPct)+"%"),
		fg:    colors.RoleContextText,
		bg:    colors.RoleContextBg,
		phase: phaseContext,
		styled: func(c *Context, text string) string {
			return c.flat(text, colors.RoleContextText)
		},
	}
}

func (c *Context) timeSegment() segment {
	return segment{
		text:  withIcon(c.Table.Icons.Time, input.FormatDuration(c.Input.DurationMs)),
		fg:    colors.RoleTimeFg,
		bg:    colors.RoleTimeBg,
		phase: phaseTime,
	}
}

func (c *Context) linesSegment() segment {
	s := segment{
		text:  fmt.Sprintf("+%d/-%d", c.Input.LinesAdded, c.Input.LinesRemoved),
		fg:    colors.RoleLinesFg,
		bg:    colors.RoleLinesBg,
		phase: phaseLines,
	}
	s.styled = func(c *Context, _ string) string {
		return c.flat("+"+strconv.Itoa(c.Input.LinesAdded), colors.RoleAddedFg) +
			c.flat("/", colors.RoleSeparatorFg) +
			c.flat("-"+strconv.Itoa(c.Input.LinesRemoved), colors.RoleRemovedFg)
	}
	return s
}

// rateSegment is empty unless time left, reset time and limit percentage are
// all present. A 0% limit is present.
func (c *Context) rateSegment() segment {
	r := c.Input.Rate
	s := segment{fg: colors.RoleRateFg, bg: colors.RoleRateBg, phase: phaseRate}
	if !r.Complete() {
		return s
	}
	s.text = withIcon(c.Table.Icons.Rate, fmt.Sprintf("%s left · reset %s · %s",
		r.TimeLeft, r.ResetTime, input.FormatPercent(*r.LimitPct)))
	return s
}

func (c *Context) burnSegment() segment {
	s := segment{fg: colors.RoleBurnFg, bg: colors.RoleBurnBg, phase: phaseBurn}
	if c.Input.Rate.BurnRate == "" {
		return s
	}
	s.text = withIcon(c.Table.Icons.Burn, c.Input.Rate.BurnRate)
	return s
}

// optional appends the non-empty segments.
func optional(dst []segment, segs ...segment) []segment {
	for _, s := range segs {
		if !s.empty() {
			dst = append(dst, s)
		}
	}
	return dst
}

// topSegments and bottomSegments split the fields for the two-line layouts.
func (c *Context) topSegments() []segment {
	return []segment{c.modelSegment(), c.dirSegment(), c.branchSegment(), c.worktreeSegment()}
}

func (c *Context) bottomSegments() []segment {
	segs := []segment{c.contextSegment(), c.statusSegment(), c.syncSegment(), c.timeSegment(), c.linesSegment()}
	return optional(segs, c.rateSegment(), c.burnSegment())
}

func mapSegments(segs []segment, fn func(segment) string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		out = append(out, fn(s))
	}
	return out
}
