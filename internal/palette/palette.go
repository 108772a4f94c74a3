// Package palette holds the 60-entry color ramps that animated themes cycle
// through, and the escape sequences used to emit them.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

// Size is the number of slots in every ramp.
const Size = 60

// Palette is a cyclic ramp of Size colors.
type Palette [Size]colorful.Color

// At returns the color at a cyclic index.
func (p *Palette) At(i int) colorful.Color {
	return p[Mod(i)]
}

// Mod normalizes x into [0, Size).
func Mod(x int) int {
	return ((x % Size) + Size) % Size
}

var (
	// Rainbow is a soft full-hue sweep.
	Rainbow = build(func(i int) colorful.Color {
		return colorful.Hsv(float64(i)*6, 0.55, 1.0)
	})

	// LSD is saturated with a brightness wobble so adjacent slots contrast.
	LSD = build(func(i int) colorful.Color {
		v := 0.8 + 0.2*math.Sin(float64(i)*math.Pi/5)
		return colorful.Hsv(math.Mod(float64(i)*6*7, 360), 1.0, v)
	})

	// PLSD is the LSD ramp washed toward white.
	PLSD = build(func(i int) colorful.Color {
		return LSD[i].BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.4).Clamped()
	})

	// Mono is a grayscale triangle wave, dark to light and back.
	Mono = build(func(i int) colorful.Color {
		half := Size / 2
		step := i
		if step > half {
			step = Size - i
		}
		l := 0.35 + 0.6*float64(step)/float64(half)
		return colorful.Color{R: l, G: l, B: l}
	})
)

func build(fn func(i int) colorful.Color) *Palette {
	var p Palette
	for i := range p {
		p[i] = fn(i).Clamped()
	}
	return &p
}

// For selects the ramp for an animation mode. Mono color mode always uses the
// grayscale ramp; static themes have no ramp and get nil.
func For(anim theme.AnimationMode, color theme.ColorMode) *Palette {
	if !anim.Animated() {
		return nil
	}
	if color == theme.ColorMono {
		return Mono
	}
	switch anim {
	case theme.AnimationRainbow:
		return Rainbow
	case theme.AnimationLSD:
		return LSD
	case theme.AnimationPLSD:
		return PLSD
	default:
		return nil
	}
}

const (
	// Reset clears all attributes.
	Reset = termenv.CSI + termenv.ResetSeq + "m"
	// Bold switches on bold text.
	Bold = termenv.CSI + termenv.BoldSeq + "m"
)

// Fg returns the escape sequence setting c as foreground.
func Fg(c colorful.Color) string {
	return sequence(termenv.RGBColor(c.Hex()), false)
}

// Bg returns the escape sequence setting c as background.
func Bg(c colorful.Color) string {
	return sequence(termenv.RGBColor(c.Hex()), true)
}

// Fg256 returns the foreground sequence for an xterm 256-color code.
func Fg256(code uint8) string {
	return sequence(termenv.ANSI256Color(code), false)
}

// Bg256 returns the background sequence for an xterm 256-color code.
func Bg256(code uint8) string {
	return sequence(termenv.ANSI256Color(code), true)
}

func sequence(c termenv.Color, bg bool) string {
	return termenv.CSI + c.Sequence(bg) + "m"
}
