package render

import (
	"math/rand/v2"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/palette"
)

// gradientStride spreads neighbouring characters across the ramp.
const gradientStride = 7

// Gradient stamps a foreground color on every code point of text. Code point
// i takes palette slot start + 7i + offset. A nil palette returns text as is.
func Gradient(text string, start, offset int, pal *palette.Palette) string {
	if pal == nil || text == "" {
		return text
	}
	var b strings.Builder
	i := 0
	for _, r := range text {
		b.WriteString(palette.Fg(pal.At(start + i*gradientStride + offset)))
		b.WriteRune(r)
		b.WriteString(palette.Reset)
		i++
	}
	return b.String()
}

// Sparkle stamps a background color on every code point of text, with fg
// written after each background. Stride and direction come from start, so
// each call site gets its own rhythm.
func Sparkle(text, fg string, start, offset int, pal *palette.Palette) string {
	if pal == nil || text == "" {
		return text
	}
	stride := 5 + palette.Mod(start)%7
	direction := 1
	if palette.Mod(start)%20 >= 10 {
		direction = -1
	}

	var b strings.Builder
	i := 0
	for _, r := range text {
		b.WriteString(palette.Bg(pal.At(start + direction*i*stride + offset)))
		b.WriteString(fg)
		b.WriteRune(r)
		b.WriteString(palette.Reset)
		i++
	}
	return b.String()
}

// Sample picks one color for a whole element. phase keeps elements out of
// step with each other.
func Sample(pal *palette.Palette, phase, offset int) colorful.Color {
	return pal.At(phase + offset)
}

// Phase constants, one per visual element.
const (
	phaseModel    = 0
	phaseDir      = 10
	phaseBranch   = 20
	phaseWorktree = 30
	phaseStatus   = 40
	phaseSync     = 50
	phaseContext  = 60
	phaseTime     = 70
	phaseLines    = 80
	phaseRate     = 85
	phaseBurn     = 95
)

const (
	flickerOdds = 24
	flickerSeed = 0x9e3779b97f4a7c15
)

var flashColor = colorful.Color{R: 1, G: 1, B: 1}

// flicker decides, once per render, whether one battery cell flashes and
// which. It is seeded by the render instant so equal inputs reproduce.
func flicker(nowDs int64, cells int) (int, bool) {
	if cells <= 0 {
		return 0, false
	}
	rng := rand.New(rand.NewPCG(uint64(nowDs), flickerSeed))
	if rng.IntN(flickerOdds) != 0 {
		return 0, false
	}
	return rng.IntN(cells), true
}

// batterySlice is the ramp window a battery cell may draw from. Fuller
// context pushes the window toward the alert end of the ramp.
func batterySlice(tier colors.Tier) (lo, span int) {
	switch tier {
	case colors.TierCritical:
		return 55, 10
	case colors.TierWarning:
		return 3, 12
	default:
		return 0, palette.Size
	}
}

// batteryColor returns the foreground sequence for filled cell pos.
func (c *Context) batteryColor(pos int, flash int, flashing bool) string {
	if c.pal == nil {
		return c.Table.Seq(colors.RoleBatteryFg)
	}
	if flashing && pos == flash {
		return palette.Fg(flashColor)
	}
	lo, span := batterySlice(c.Table.Tier)
	idx := lo + palette.Mod(c.Offsets.Color+pos*3)%span
	return palette.Fg(c.pal.At(idx))
}
