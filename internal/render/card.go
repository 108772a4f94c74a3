package render

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/palette"
)

const (
	panelWidth   = 24
	batteryCells = 10
)

// renderCard draws a bordered box with two panelWidth columns: session and
// repository on the left, usage on the right. Always seven lines.
func renderCard(c *Context) string {
	left := []string{
		c.cell(c.modelSegment()),
		c.cell(c.dirSegment()),
		c.cell(c.branchSegment()),
		c.cell(c.worktreeSegment()),
		c.cell(c.statusSegment()),
	}
	right := []string{
		c.battery(),
		c.usageRow(),
		c.cell(c.syncSegment()),
		c.cell(c.compactRateSegment()),
		c.cell(c.burnSegment()),
	}

	rule := strings.Repeat("─", panelWidth+2)
	bar := c.flat("│", colors.RoleBorderFg)

	lines := make([]string, 0, 7)
	lines = append(lines, c.flat("╭"+rule+"┬"+rule+"╮", colors.RoleBorderFg))
	for i := range left {
		lines = append(lines, bar+" "+PadRight(left[i], panelWidth)+" "+bar+" "+PadRight(right[i], panelWidth)+" "+bar)
	}
	lines = append(lines, c.flat("╰"+rule+"┴"+rule+"╯", colors.RoleBorderFg))
	return strings.Join(lines, "\n")
}

// cell renders a segment truncated to the panel width.
func (c *Context) cell(s segment) string {
	if s.empty() {
		return ""
	}
	if VisibleWidth(s.text) > panelWidth {
		s.text = Fit(s.text, panelWidth)
		s.styled = nil
	}
	out := c.inline(s)
	if VisibleWidth(out) > panelWidth {
		s.styled = nil
		out = c.inline(s)
	}
	return out
}

// compactRateSegment is rateSegment shortened to fit a card panel.
func (c *Context) compactRateSegment() segment {
	s := c.rateSegment()
	if s.empty() {
		return s
	}
	r := c.Input.Rate
	s.text = withIcon(c.Table.Icons.Rate, r.TimeLeft+" · "+r.ResetTime+" · ")
	s.text += input.FormatPercent(*r.LimitPct)
	return s
}

// usageRow shows duration and line counts, dropping the counts when both do
// not fit the panel.
func (c *Context) usageRow() string {
	duration := c.cell(c.timeSegment())
	row := duration + " " + c.cell(c.linesSegment())
	if VisibleWidth(row) > panelWidth {
		return duration
	}
	return row
}

// battery draws the remaining context as a gauge of batteryCells cells.
func (c *Context) battery() string {
	remaining := 100 - c.Input.ContextPct
	filled := (remaining + 5) / 10
	filled = max(0, min(batteryCells, filled))

	flash, flashing := flicker(c.NowDs, filled)

	var b strings.Builder
	b.WriteString(c.Table.Icons.Context)
	b.WriteString(" [")
	for i := 0; i < batteryCells; i++ {
		if i < filled {
			b.WriteString(c.batteryColor(i, flash, flashing))
			b.WriteString("█")
			b.WriteString(palette.Reset)
			continue
		}
		b.WriteString(c.flat("░", colors.RoleMutedFg))
	}
	b.WriteString("] ")
	b.WriteString(c.flat(strconv.Itoa(c.Input.ContextPct)+"%", colors.RoleContextText))
	return b.String()
}
