package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/prismline/internal/theme"
)

// Render dispatches on the context's layout. The layout must already be
// resolved; LayoutUnknown is a caller bug and panics, which RenderDescriptor
// turns into the emergency line.
func Render(c *Context) string {
	switch c.Theme.Layout {
	case theme.LayoutOneLine:
		return renderOneLine(c)
	case theme.LayoutTwoLine:
		return renderTwoLine(c)
	case theme.LayoutCard:
		return renderCard(c)
	case theme.LayoutBars:
		return renderBars(c)
	case theme.LayoutBadges:
		return renderBadges(c)
	default:
		panic(fmt.Sprintf("unresolved layout %d", c.Theme.Layout))
	}
}

func renderOneLine(c *Context) string {
	segs := []segment{
		c.modelSegment(),
		c.dirSegment(),
		c.branchSegment(),
		c.statusSegment(),
		c.syncSegment(),
		c.contextSegment(),
		c.timeSegment(),
		c.linesSegment(),
	}
	segs = optional(segs, c.rateSegment(), c.burnSegment())
	return strings.Join(mapSegments(segs, c.inline), c.separator())
}

func renderTwoLine(c *Context) string {
	top := mapSegments(c.topSegments(), c.inline)
	bottom := mapSegments(c.bottomSegments(), c.inline)
	first, second := BalanceLines(top, bottom, c.separator())
	return first + "\n" + second
}

func renderBars(c *Context) string {
	top := mapSegments(c.topSegments(), c.block)
	bottom := mapSegments(c.bottomSegments(), c.block)
	first, second := BalanceLines(top, bottom, " ")
	return first + "\n" + second
}

func renderBadges(c *Context) string {
	top := mapSegments(c.topSegments(), c.badge)
	bottom := mapSegments(c.bottomSegments(), c.badge)
	first, second := BalanceLines(top, bottom, " ")
	return first + "\n" + second
}
