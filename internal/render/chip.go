package render

import (
	"strings"

	"github.com/alexisbeaulieu97/prismline/internal/palette"
)

// Chip wraps plain content in a colored block. Both styles end with a reset.
func Chip(content, fg, bg string, style ChipStyle) string {
	switch style {
	case ChipPipe:
		return bg + fg + "│ " + content + " │" + palette.Reset
	default:
		return bg + fg + " " + content + " " + palette.Reset
	}
}

// BalanceLines joins two part lists so both lines reach the same visible
// width. The shorter line's separators are widened; leftover columns go to
// the earliest gaps.
func BalanceLines(top, bottom []string, sep string) (string, string) {
	target := max(naturalWidth(top, sep), naturalWidth(bottom, sep))
	return joinWidened(top, sep, target), joinWidened(bottom, sep, target)
}

func naturalWidth(parts []string, sep string) int {
	if len(parts) == 0 {
		return 0
	}
	w := VisibleWidth(sep) * (len(parts) - 1)
	for _, p := range parts {
		w += VisibleWidth(p)
	}
	return w
}

func joinWidened(parts []string, sep string, target int) string {
	extra := target - naturalWidth(parts, sep)
	gaps := len(parts) - 1
	if gaps < 1 || extra <= 0 {
		return strings.Join(parts, sep) + spaces(extra)
	}

	base, rem := extra/gaps, extra%gaps
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i == gaps {
			break
		}
		pad := base
		if i < rem {
			pad++
		}
		left := pad / 2
		b.WriteString(spaces(left))
		b.WriteString(sep)
		b.WriteString(spaces(pad - left))
	}
	return b.String()
}
