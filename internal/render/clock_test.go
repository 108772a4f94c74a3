package render

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

var animationModes = []theme.AnimationMode{
	theme.AnimationStatic,
	theme.AnimationRainbow,
	theme.AnimationLSD,
	theme.AnimationPLSD,
}

func TestNowDeciseconds(t *testing.T) {
	t.Parallel()

	assert.EqualValues(t, 0, NowDeciseconds(time.UnixMilli(99)))
	assert.EqualValues(t, 1, NowDeciseconds(time.UnixMilli(100)))
	assert.EqualValues(t, 17_000_000_123, NowDeciseconds(time.UnixMilli(1_700_000_012_345)))
	assert.EqualValues(t, -1, NowDeciseconds(time.UnixMilli(-1)))
	assert.EqualValues(t, -1, NowDeciseconds(time.UnixMilli(-100)))
	assert.EqualValues(t, -2, NowDeciseconds(time.UnixMilli(-101)))
}

func TestMod60(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Mod60(0))
	assert.Equal(t, 59, Mod60(-1))
	assert.Equal(t, 0, Mod60(-60))
	assert.Equal(t, 7, Mod60(67))
}

func TestStaticOffsetsAreZero(t *testing.T) {
	t.Parallel()

	for _, ts := range []int64{0, 1, -1, 12345, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, Offsets{}, ComputeOffsets(ts, theme.AnimationStatic))
	}
}

func TestRainbowOffsets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Offsets{Color: 5, Bg: 35}, ComputeOffsets(1, theme.AnimationRainbow))
	assert.Equal(t, Offsets{Color: 30, Bg: 0}, ComputeOffsets(6, theme.AnimationRainbow))
	// -1 * 5 = -5 → 55, background half a cycle behind.
	assert.Equal(t, Offsets{Color: 55, Bg: 25}, ComputeOffsets(-1, theme.AnimationRainbow))
}

func TestLSDOffsets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Offsets{Color: 41, Bg: 37}, ComputeOffsets(1, theme.AnimationLSD))
	assert.Equal(t, Offsets{Color: 22, Bg: 14}, ComputeOffsets(2, theme.AnimationLSD))
	assert.Equal(t, ComputeOffsets(2, theme.AnimationLSD), ComputeOffsets(2, theme.AnimationPLSD))
	// -1 * 41 = -41 → 19; -1 * 37 = -37 → 23.
	assert.Equal(t, Offsets{Color: 19, Bg: 23}, ComputeOffsets(-1, theme.AnimationLSD))
}

func TestOffsetsStayInRange(t *testing.T) {
	t.Parallel()

	stamps := []int64{math.MinInt64, math.MinInt64 + 1, -1_000_003, -61, -1, 0, 1, 59, 60, 17_000_000_123, math.MaxInt64}
	for ts := int64(-500); ts <= 500; ts++ {
		stamps = append(stamps, ts)
	}

	for _, mode := range animationModes {
		for _, ts := range stamps {
			o := ComputeOffsets(ts, mode)
			require.GreaterOrEqual(t, o.Color, 0, "mode %s ts %d", mode, ts)
			require.Less(t, o.Color, 60, "mode %s ts %d", mode, ts)
			require.GreaterOrEqual(t, o.Bg, 0, "mode %s ts %d", mode, ts)
			require.Less(t, o.Bg, 60, "mode %s ts %d", mode, ts)
		}
	}
}

func TestOffsetsMatchUnreducedFormula(t *testing.T) {
	t.Parallel()

	norm := func(x int64) int { return int(((x % 60) + 60) % 60) }
	for ts := int64(-1000); ts <= 1000; ts += 7 {
		rb := ComputeOffsets(ts, theme.AnimationRainbow)
		require.Equal(t, norm(ts*5), rb.Color)
		require.Equal(t, norm(int64(norm(ts*5))+30), rb.Bg)

		lsd := ComputeOffsets(ts, theme.AnimationLSD)
		require.Equal(t, norm(ts*41), lsd.Color)
		require.Equal(t, norm(ts*37), lsd.Bg)
	}
}

func TestOffsetsAdvanceBetweenTicks(t *testing.T) {
	t.Parallel()

	base := time.UnixMilli(1_700_000_000_000)
	first := ComputeOffsets(NowDeciseconds(base), theme.AnimationRainbow)
	second := ComputeOffsets(NowDeciseconds(base.Add(100*time.Millisecond)), theme.AnimationRainbow)
	assert.Equal(t, Mod60(int64(first.Color)+5), second.Color)
}
