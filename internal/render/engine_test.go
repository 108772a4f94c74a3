package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/logger"
	"github.com/alexisbeaulieu97/prismline/internal/palette"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

func bufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	return log, &buf
}

func TestInvalidThemeFallsBackToMinimal(t *testing.T) {
	log, buf := bufferLogger(t)

	for _, name := range []string{"", "neon", "2line-emoji", "mono-", "RAINBOW-1LINE"} {
		out := RenderTheme(Request{ThemeName: name, Input: sampleInput(), Repo: sampleRepo(), Now: fixedNow, Log: log})
		assert.Equal(t, "[Opus 4] prismline | 42%", out, "theme %q", name)
	}
	assert.Contains(t, buf.String(), "theme not recognised")
}

func TestHiddenThemesNeedOptIn(t *testing.T) {
	req := Request{ThemeName: "lsd-bars", Input: sampleInput(), Repo: sampleRepo(), Now: fixedNow, Log: logger.Nop()}
	assert.Equal(t, Minimal(sampleInput()), RenderTheme(req))

	req.AllowHidden = true
	out := RenderTheme(req)
	assert.NotEqual(t, Minimal(sampleInput()), out)
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestRendererPanicFallsBackToEmergency(t *testing.T) {
	original := dispatch
	t.Cleanup(func() { dispatch = original })
	dispatch = func(*Context) string { panic("segment exploded") }

	log, buf := bufferLogger(t)
	out := RenderTheme(Request{ThemeName: "card", Input: sampleInput(), Repo: sampleRepo(), Now: fixedNow, Log: log})

	assert.Equal(t, "Opus 4 | 42%", out)
	assert.Contains(t, buf.String(), "render error on layout card: segment exploded")
	assert.Contains(t, buf.String(), "renderer failed")
}

func TestUnknownLayoutDescriptorUsesCard(t *testing.T) {
	d := theme.Descriptor{Color: theme.ColorPastel, Animation: theme.AnimationStatic, Layout: theme.LayoutUnknown, Icon: theme.IconEmoji}
	out := RenderDescriptor(d, Request{Input: sampleInput(), Repo: sampleRepo(), Now: fixedNow, Log: logger.Nop()})
	assert.Len(t, strings.Split(out, "\n"), 7)
}

func TestNilLoggerIsTolerated(t *testing.T) {
	assert.Equal(t, "[Unknown] ~ | 0%", RenderTheme(Request{ThemeName: "bogus", Input: input.Defaults()}))
}

func TestMonoRainbowBadgesNerdEndToEnd(t *testing.T) {
	req := Request{
		ThemeName: "mono-rainbow-badges-nerd",
		Input:     sampleInput(),
		Repo:      sampleRepo(),
		Now:       fixedNow,
		Log:       logger.Nop(),
	}

	d := theme.Parse(req.ThemeName)
	require.Equal(t, theme.Descriptor{Color: theme.ColorMono, Animation: theme.AnimationRainbow, Layout: theme.LayoutBadges, Icon: theme.IconNerd}, d)

	out := RenderTheme(req)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, VisibleWidth(lines[0]), VisibleWidth(lines[1]))
	assert.False(t, strings.HasSuffix(out, "\n"))

	// badge backgrounds are sampled from the grayscale ramp
	offsets := ComputeOffsets(NowDeciseconds(fixedNow), theme.AnimationRainbow)
	assert.True(t, strings.HasPrefix(out, palette.Bg(Sample(palette.Mono, phaseModel, offsets.Bg))))

	for i := 0; i < 5; i++ {
		assert.Equal(t, out, RenderTheme(req))
	}
}

func TestRenderIsReferentiallyTransparent(t *testing.T) {
	for _, name := range theme.Names(true) {
		req := Request{ThemeName: name, AllowHidden: true, Input: sampleInput(), Repo: sampleRepo(), Now: fixedNow, Log: logger.Nop()}
		first := RenderTheme(req)
		require.Equal(t, first, RenderTheme(req), "theme %s", name)
		require.Len(t, strings.Split(first, "\n"), theme.Parse(name).Layout.Lines(), "theme %s", name)
	}
}
