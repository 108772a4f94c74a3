package colors

import "github.com/alexisbeaulieu97/prismline/internal/theme"

// Tier is the context-pressure level derived from context usage.
type Tier uint8

const (
	TierNormal Tier = iota
	TierWarning
	TierCritical

	tierCount
)

const (
	warningThreshold  = 50
	criticalThreshold = 70
)

// TierFor maps a context percentage to its tier.
func TierFor(pct float64) Tier {
	switch {
	case pct >= criticalThreshold:
		return TierCritical
	case pct >= warningThreshold:
		return TierWarning
	default:
		return TierNormal
	}
}

func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Icons is the glyph set used by the layouts.
type Icons struct {
	Model    string
	Dir      string
	Branch   string
	Worktree string
	Context  string
	Time     string
	Lines    string
	Rate     string
	Burn     string
	Clean    string
	Sync     string
	Ahead    string
	Behind   string
}

var emojiIcons = Icons{
	Model:    "🤖",
	Dir:      "📁",
	Branch:   "🌿",
	Worktree: "🌳",
	Time:     "⌛",
	Lines:    "📝",
	Rate:     "📊",
	Burn:     "🔥",
	Clean:    "✨",
	Sync:     "🔄",
	Ahead:    "↑",
	Behind:   "↓",
}

var nerdIcons = Icons{
	Model:    "\U000f06a9", // robot
	Dir:      "\uf07b",     // folder
	Branch:   "\ue0a0",     // branch
	Worktree: "\uf1bb",     // tree
	Time:     "\uf017",     // clock
	Lines:    "\uf044",     // edit
	Rate:     "\uf080",     // bar chart
	Burn:     "\uf06d",     // fire
	Clean:    "\uf00c",     // check
	Sync:     "\uf021",     // refresh
	Ahead:    "\uf062",
	Behind:   "\uf063",
}

// Battery full, half and empty.
var contextIcons = map[theme.IconMode][tierCount]string{
	theme.IconEmoji: {"🟢", "🟡", "🔴"},
	theme.IconNerd:  {"\uf240", "\uf242", "\uf244"},
}

// IconsFor returns the glyph set for an icon mode, with the context icon
// chosen by tier.
func IconsFor(mode theme.IconMode, tier Tier) Icons {
	icons := emojiIcons
	if mode == theme.IconNerd {
		icons = nerdIcons
	}
	icons.Context = contextIcons[mode][tier]
	return icons
}
