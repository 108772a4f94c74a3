// Package render composes the status display from a theme, the session
// input and repository state.
package render

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/palette"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

// ChipStyle selects how chips are delimited in the badges layout.
type ChipStyle uint8

const (
	ChipBadge ChipStyle = iota
	ChipPipe
)

// ParseChipStyle maps "pipe" to ChipPipe and anything else to ChipBadge.
func ParseChipStyle(s string) ChipStyle {
	if strings.EqualFold(strings.TrimSpace(s), "pipe") {
		return ChipPipe
	}
	return ChipBadge
}

func (s ChipStyle) String() string {
	if s == ChipPipe {
		return "pipe"
	}
	return "badge"
}

// Context carries everything one render needs. It is created per render and
// discarded afterwards.
type Context struct {
	Theme     theme.Descriptor
	Table     *colors.Table
	Offsets   Offsets
	Input     input.RenderInput
	Repo      gitstate.State
	ChipStyle ChipStyle
	NowDs     int64

	pal *palette.Palette
}

// NewContext builds the render context for a descriptor at instant now.
func NewContext(d theme.Descriptor, in input.RenderInput, repo gitstate.State, now time.Time, style ChipStyle, overrides colors.Overrides) *Context {
	nowDs := NowDeciseconds(now)
	return &Context{
		Theme: d,
		Table: colors.Build(colors.Options{
			Color:      d.Color,
			Icon:       d.Icon,
			Animation:  d.Animation,
			ContextPct: in.Usage(),
			Overrides:  overrides,
		}),
		Offsets:   ComputeOffsets(nowDs, d.Animation),
		Input:     in,
		Repo:      repo,
		ChipStyle: style,
		NowDs:     nowDs,
		pal:       palette.For(d.Animation, d.Color),
	}
}

// fg colors text for a role: a flat role color for static themes, a moving
// gradient otherwise.
func (c *Context) fg(text string, role colors.Role, phase int) string {
	if text == "" {
		return ""
	}
	if c.pal == nil {
		return c.Table.Seq(role) + text + palette.Reset
	}
	return Gradient(text, phase, c.Offsets.Color, c.pal)
}

// flat colors text with the role color regardless of animation.
func (c *Context) flat(text string, role colors.Role) string {
	if text == "" {
		return ""
	}
	return c.Table.Seq(role) + text + palette.Reset
}

// bg returns the background sequence for an element.
func (c *Context) bg(role colors.Role, phase int) string {
	if c.pal == nil {
		return c.Table.Seq(role)
	}
	return palette.Bg(Sample(c.pal, phase, c.Offsets.Bg))
}

// chipText returns the foreground used on top of an element background.
func (c *Context) chipText(role colors.Role) string {
	if c.pal == nil {
		return c.Table.Seq(role)
	}
	return c.Table.Seq(colors.RoleChipTextFg)
}

func (c *Context) separator() string {
	return c.flat(" │ ", colors.RoleSeparatorFg)
}
