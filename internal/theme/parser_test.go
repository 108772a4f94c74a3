package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Descriptor
	}{
		{"2line", Descriptor{ColorPastel, AnimationStatic, LayoutTwoLine, IconEmoji}},
		{"card-nerd", Descriptor{ColorPastel, AnimationStatic, LayoutCard, IconNerd}},
		{"mono-1line", Descriptor{ColorMono, AnimationStatic, LayoutOneLine, IconEmoji}},
		{"custom-bars", Descriptor{ColorCustom, AnimationStatic, LayoutBars, IconEmoji}},
		{"rainbow-card", Descriptor{ColorPastel, AnimationRainbow, LayoutCard, IconEmoji}},
		{"lsd-badges-nerd", Descriptor{ColorPastel, AnimationLSD, LayoutBadges, IconNerd}},
		{"mono-rainbow-badges-nerd", Descriptor{ColorMono, AnimationRainbow, LayoutBadges, IconNerd}},
		{"custom-lsd-2line", Descriptor{ColorCustom, AnimationLSD, LayoutTwoLine, IconEmoji}},
		{"p.lsd-card", Descriptor{ColorPastel, AnimationPLSD, LayoutCard, IconEmoji}},
		{"p.lsd-bars-nerd", Descriptor{ColorPastel, AnimationPLSD, LayoutBars, IconNerd}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.name))
		})
	}
}

func TestParseInvalidNames(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"card2",
		"neon-card",
		"rainbow-mono-card", // prefixes out of order
		"card-nerd-nerd",
		"mono-",
		"-nerd",
		"p.lsd-mono-card",
		"mono-p.lsd-card",
		"CARD",
		" card",
		"not valid json{{{",
	}

	for _, name := range invalid {
		d := Parse(name)
		assert.Equal(t, LayoutUnknown, d.Layout, "name %q", name)
		assert.False(t, d.Valid(), "name %q", name)
	}
}

func TestIsValidRestrictsHiddenAnimations(t *testing.T) {
	t.Parallel()

	require.True(t, IsValid("rainbow-card", false))
	require.True(t, IsValid("mono-2line-nerd", false))

	require.False(t, IsValid("lsd-card", false))
	require.False(t, IsValid("p.lsd-card", false))
	require.True(t, IsValid("lsd-card", true))
	require.True(t, IsValid("p.lsd-card-nerd", true))

	require.False(t, IsValid("bogus", true))
}

func TestCanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range Names(true) {
		d := Parse(name)
		require.True(t, d.Valid(), "name %q", name)

		canonical := Canonical(d)
		require.Equal(t, name, canonical)
		require.Equal(t, d, Parse(canonical))
		require.Equal(t, d, Parse(Canonical(Parse(canonical))))
	}
}

func TestCanonicalRejectsInexpressibleDescriptors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Canonical(Descriptor{Layout: LayoutUnknown}))
	assert.Empty(t, Canonical(Descriptor{Color: ColorMono, Animation: AnimationPLSD, Layout: LayoutCard}))
}

func TestNamesCounts(t *testing.T) {
	t.Parallel()

	// 3 colors x 2 animations x 5 layouts x 2 icon sets.
	require.Len(t, Names(false), 60)
	// plus lsd for every color and the 10 p.lsd composites.
	require.Len(t, Names(true), 100)

	for _, name := range Names(false) {
		require.True(t, IsValid(name, false), "name %q", name)
	}
}

func TestLayoutLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, LayoutOneLine.Lines())
	assert.Equal(t, 2, LayoutTwoLine.Lines())
	assert.Equal(t, 2, LayoutBars.Lines())
	assert.Equal(t, 2, LayoutBadges.Lines())
	assert.Equal(t, 7, LayoutCard.Lines())
	assert.Equal(t, 0, LayoutUnknown.Lines())
}

func TestResolveLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LayoutCard, ResolveLayout(LayoutUnknown))
	assert.Equal(t, LayoutBars, ResolveLayout(LayoutBars))
}
