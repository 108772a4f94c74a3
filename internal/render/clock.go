package render

import (
	"time"

	"github.com/alexisbeaulieu97/prismline/internal/palette"
	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

// Offsets are the two cyclic palette offsets for one render, both in [0,60).
type Offsets struct {
	Color int
	Bg    int
}

// NowDeciseconds floors a wall-clock instant to tenths of a second.
func NowDeciseconds(t time.Time) int64 {
	ms := t.UnixMilli()
	ds := ms / 100
	if ms%100 < 0 {
		ds--
	}
	return ds
}

// Mod60 normalizes x into [0,60), including negative x.
func Mod60(x int64) int {
	const n = palette.Size
	return int(((x % n) + n) % n)
}

// ComputeOffsets derives the animation offsets from the clock alone. Renders
// run in separate processes, so this must stay a pure function of time.
func ComputeOffsets(nowDs int64, mode theme.AnimationMode) Offsets {
	// Reducing t first keeps t*k from overflowing for any int64.
	t := int64(Mod60(nowDs))

	switch mode {
	case theme.AnimationRainbow:
		color := Mod60(t * 5)
		return Offsets{Color: color, Bg: Mod60(int64(color) + 30)}
	case theme.AnimationLSD, theme.AnimationPLSD:
		// 41 and 37 share no factor with 60 or each other, so the two
		// offsets never settle into a short common cycle.
		return Offsets{Color: Mod60(t * 41), Bg: Mod60(t * 37)}
	default:
		return Offsets{}
	}
}
