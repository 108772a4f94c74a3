package theme

import (
	"sort"
	"strings"
)

const (
	nerdSuffix      = "-nerd"
	monoPrefix      = "mono-"
	customPrefix    = "custom-"
	rainbowPrefix   = "rainbow-"
	lsdPrefix       = "lsd-"
	pastelLSDPrefix = "p.lsd-"
)

var layoutsByName = map[string]Layout{
	"1line":  LayoutOneLine,
	"2line":  LayoutTwoLine,
	"card":   LayoutCard,
	"bars":   LayoutBars,
	"badges": LayoutBadges,
}

// composites holds the standalone names that bypass the prefix grammar.
var composites = buildComposites()

func buildComposites() map[string]Descriptor {
	out := make(map[string]Descriptor, len(Layouts)*2)
	for _, layout := range Layouts {
		base := pastelLSDPrefix + layout.String()
		out[base] = Descriptor{Color: ColorPastel, Animation: AnimationPLSD, Layout: layout, Icon: IconEmoji}
		out[base+nerdSuffix] = Descriptor{Color: ColorPastel, Animation: AnimationPLSD, Layout: layout, Icon: IconNerd}
	}
	return out
}

// Parse converts a theme name into a Descriptor. Names that do not resolve to
// a layout yield a descriptor with LayoutUnknown; Parse never fails.
func Parse(name string) Descriptor {
	if d, ok := composites[name]; ok {
		return d
	}

	var d Descriptor
	rest := name

	if strings.HasSuffix(rest, nerdSuffix) {
		d.Icon = IconNerd
		rest = strings.TrimSuffix(rest, nerdSuffix)
	}

	switch {
	case strings.HasPrefix(rest, monoPrefix):
		d.Color = ColorMono
		rest = strings.TrimPrefix(rest, monoPrefix)
	case strings.HasPrefix(rest, customPrefix):
		d.Color = ColorCustom
		rest = strings.TrimPrefix(rest, customPrefix)
	}

	switch {
	case strings.HasPrefix(rest, rainbowPrefix):
		d.Animation = AnimationRainbow
		rest = strings.TrimPrefix(rest, rainbowPrefix)
	case strings.HasPrefix(rest, lsdPrefix):
		d.Animation = AnimationLSD
		rest = strings.TrimPrefix(rest, lsdPrefix)
	}

	layout, ok := layoutsByName[rest]
	if !ok {
		return Descriptor{Layout: LayoutUnknown}
	}
	d.Layout = layout
	return d
}

// IsValid reports whether name parses to a layout. Hidden animation modes are
// accepted only when allowHidden is set.
func IsValid(name string, allowHidden bool) bool {
	d := Parse(name)
	if !d.Valid() {
		return false
	}
	if d.Animation.Hidden() && !allowHidden {
		return false
	}
	return true
}

// Canonical rebuilds the theme name for a descriptor. It returns "" for
// descriptors no name can express.
func Canonical(d Descriptor) string {
	if !d.Valid() {
		return ""
	}

	suffix := ""
	if d.Icon == IconNerd {
		suffix = nerdSuffix
	}

	if d.Animation == AnimationPLSD {
		if d.Color != ColorPastel {
			return ""
		}
		return pastelLSDPrefix + d.Layout.String() + suffix
	}

	var b strings.Builder
	switch d.Color {
	case ColorMono:
		b.WriteString(monoPrefix)
	case ColorCustom:
		b.WriteString(customPrefix)
	}
	switch d.Animation {
	case AnimationRainbow:
		b.WriteString(rainbowPrefix)
	case AnimationLSD:
		b.WriteString(lsdPrefix)
	}
	b.WriteString(d.Layout.String())
	b.WriteString(suffix)
	return b.String()
}

// Names lists every valid theme name in sorted order.
func Names(allowHidden bool) []string {
	colors := []ColorMode{ColorPastel, ColorMono, ColorCustom}
	animations := []AnimationMode{AnimationStatic, AnimationRainbow, AnimationLSD}
	icons := []IconMode{IconEmoji, IconNerd}

	var names []string
	for _, c := range colors {
		for _, a := range animations {
			if a.Hidden() && !allowHidden {
				continue
			}
			for _, l := range Layouts {
				for _, i := range icons {
					names = append(names, Canonical(Descriptor{Color: c, Animation: a, Layout: l, Icon: i}))
				}
			}
		}
	}
	if allowHidden {
		for name := range composites {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
