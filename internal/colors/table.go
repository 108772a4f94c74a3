package colors

import (
	"github.com/alexisbeaulieu97/prismline/internal/palette"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

// Options are the inputs to Build.
type Options struct {
	Color      theme.ColorMode
	Icon       theme.IconMode
	Animation  theme.AnimationMode
	ContextPct float64
	Overrides  Overrides
}

// Table maps every role to a ready-to-emit escape sequence. It is built once
// per render and never modified afterwards.
type Table struct {
	seq      [RoleCount]string
	codes    [RoleCount]uint8
	Tier     Tier
	Icons    Icons
	Color    theme.ColorMode
	Animated bool
}

// Seq returns the escape sequence for a role.
func (t *Table) Seq(r Role) string {
	if t == nil || r >= RoleCount {
		return ""
	}
	return t.seq[r]
}

// Code returns the 256-color code behind a configurable role.
func (t *Table) Code(r Role) uint8 {
	if t == nil || r >= RoleCount {
		return 0
	}
	return t.codes[r]
}

// Build produces the color table for one render.
func Build(opts Options) *Table {
	tier := TierFor(opts.ContextPct)
	t := &Table{
		Tier:     tier,
		Icons:    IconsFor(opts.Icon, tier),
		Color:    opts.Color,
		Animated: opts.Animation.Animated(),
	}

	var boldFg bool
	switch opts.Color {
	case theme.ColorMono:
		t.codes = monoCodes(tier)
	case theme.ColorCustom:
		t.codes = customCodes(tier, opts.Overrides)
		boldFg = tier >= TierWarning
	default:
		t.codes = pastelCodes(tier)
	}

	for r := Role(0); r < RoleCount; r++ {
		if !r.Configurable() {
			continue
		}
		if r.Background() {
			t.seq[r] = palette.Bg256(t.codes[r])
			continue
		}
		seq := palette.Fg256(t.codes[r])
		if boldFg {
			seq = palette.Bold + seq
		}
		t.seq[r] = seq
	}

	t.seq[RoleContextText] = contextEmphasis(tier, t.codes)
	return t
}

// contextEmphasis escalates plain → bold → bold + alert color.
func contextEmphasis(tier Tier, codes [RoleCount]uint8) string {
	switch tier {
	case TierCritical:
		return palette.Bold + palette.Fg256(codes[RoleAlertFg])
	case TierWarning:
		return palette.Bold + palette.Fg256(codes[RoleContextFg])
	default:
		return palette.Fg256(codes[RoleContextFg])
	}
}

func pastelCodes(tier Tier) [RoleCount]uint8 {
	codes := pastelBase
	for r, c := range pastelTiers[tier] {
		codes[r] = c
	}
	return codes
}

func monoCodes(tier Tier) [RoleCount]uint8 {
	codes := monoBase
	for _, r := range monoTierRoles {
		c := int(codes[r]) + int(monoBrightness[tier])
		if c > 255 {
			c = 255
		}
		codes[r] = uint8(c)
	}
	return codes
}

func customCodes(tier Tier, overrides Overrides) [RoleCount]uint8 {
	codes := pastelCodes(tier)
	for r := Role(0); r < RoleCount; r++ {
		if !r.Configurable() {
			continue
		}
		if c, ok := overrides[r.Key()]; ok {
			codes[r] = c
		}
	}
	return codes
}
