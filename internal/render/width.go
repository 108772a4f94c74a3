package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// widthCond ignores the locale so ambiguous-width glyphs (box drawing,
// arrows) always count as one column.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth is the terminal column count of s: escapes are ignored and
// wide code points (emoji, Hangul, CJK) count as two.
func VisibleWidth(s string) int {
	return widthCond.StringWidth(Strip(s))
}

// PadRight pads s with spaces up to width visible columns.
func PadRight(s string, width int) string {
	gap := width - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Fit truncates plain text to width columns, marking the cut with an ellipsis.
func Fit(plain string, width int) string {
	if width <= 0 {
		return ""
	}
	if widthCond.StringWidth(plain) <= width {
		return plain
	}
	return widthCond.Truncate(plain, width, "…")
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
