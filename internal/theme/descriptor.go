// Package theme parses theme names into render descriptors.
//
// A theme name encodes four independent choices: color mode, animation mode,
// layout and icon set. The grammar is
//
//	[color-prefix][animation-prefix]{layout}[-nerd]
//
// plus the standalone "p.lsd-{layout}[-nerd]" composites.
package theme

// ColorMode selects the color table family.
type ColorMode uint8

const (
	ColorPastel ColorMode = iota
	ColorMono
	ColorCustom
)

func (c ColorMode) String() string {
	switch c {
	case ColorPastel:
		return "pastel"
	case ColorMono:
		return "mono"
	case ColorCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// AnimationMode selects how colors move between renders.
type AnimationMode uint8

const (
	AnimationStatic AnimationMode = iota
	AnimationRainbow
	AnimationLSD
	AnimationPLSD
)

func (a AnimationMode) String() string {
	switch a {
	case AnimationStatic:
		return "static"
	case AnimationRainbow:
		return "rainbow"
	case AnimationLSD:
		return "lsd"
	case AnimationPLSD:
		return "p.lsd"
	default:
		return "unknown"
	}
}

// Animated reports whether offsets change over time.
func (a AnimationMode) Animated() bool {
	return a != AnimationStatic
}

// Hidden reports whether the mode is undocumented and needs opt-in.
func (a AnimationMode) Hidden() bool {
	return a == AnimationLSD || a == AnimationPLSD
}

// Layout is the closed set of render layouts. LayoutUnknown marks a name that
// did not parse.
type Layout uint8

const (
	LayoutUnknown Layout = iota
	LayoutOneLine
	LayoutTwoLine
	LayoutCard
	LayoutBars
	LayoutBadges
)

// Layouts lists the known layouts in display order.
var Layouts = []Layout{LayoutOneLine, LayoutTwoLine, LayoutCard, LayoutBars, LayoutBadges}

func (l Layout) String() string {
	switch l {
	case LayoutOneLine:
		return "1line"
	case LayoutTwoLine:
		return "2line"
	case LayoutCard:
		return "card"
	case LayoutBars:
		return "bars"
	case LayoutBadges:
		return "badges"
	default:
		return "unknown"
	}
}

// Lines returns the number of output lines the layout always produces.
func (l Layout) Lines() int {
	switch l {
	case LayoutOneLine:
		return 1
	case LayoutTwoLine, LayoutBars, LayoutBadges:
		return 2
	case LayoutCard:
		return 7
	default:
		return 0
	}
}

// IconMode selects emoji or Nerd Font glyphs.
type IconMode uint8

const (
	IconEmoji IconMode = iota
	IconNerd
)

func (i IconMode) String() string {
	if i == IconNerd {
		return "nerd"
	}
	return "emoji"
}

// Descriptor is the parsed form of a theme name.
type Descriptor struct {
	Color     ColorMode
	Animation AnimationMode
	Layout    Layout
	Icon      IconMode
}

// Valid reports whether the descriptor names a known layout.
func (d Descriptor) Valid() bool {
	return d.Layout != LayoutUnknown
}

// ResolveLayout maps LayoutUnknown to the richest layout. It is applied at the
// render boundary for descriptors built in code; names that fail to parse take
// the minimal fallback instead.
func ResolveLayout(l Layout) Layout {
	if l == LayoutUnknown {
		return LayoutCard
	}
	return l
}
