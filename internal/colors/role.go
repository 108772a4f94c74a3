// Package colors builds the semantic color table for a render.
package colors

// Role names one semantic slot in the color table.
type Role uint8

const (
	RoleModelFg Role = iota
	RoleModelBg
	RoleDirFg
	RoleDirBg
	RoleBranchFg
	RoleBranchBg
	RoleWorktreeFg
	RoleWorktreeBg
	RoleStatusFg
	RoleStatusBg
	RoleSyncFg
	RoleSyncBg
	RoleContextFg
	RoleContextBg
	RoleTimeFg
	RoleTimeBg
	RoleLinesFg
	RoleLinesBg
	RoleRateFg
	RoleRateBg
	RoleBurnFg
	RoleBurnBg
	RoleAddedFg
	RoleRemovedFg
	RoleSeparatorFg
	RoleBorderFg
	RoleLabelFg
	RoleMutedFg
	RoleBatteryFg
	RoleChipTextFg
	RoleAlertFg
	// RoleContextText is derived from the pressure tier, not configurable.
	RoleContextText

	RoleCount
)

var roleKeys = [RoleCount]string{
	RoleModelFg:     "MODEL_FG",
	RoleModelBg:     "MODEL_BG",
	RoleDirFg:       "DIR_FG",
	RoleDirBg:       "DIR_BG",
	RoleBranchFg:    "BRANCH_FG",
	RoleBranchBg:    "BRANCH_BG",
	RoleWorktreeFg:  "WORKTREE_FG",
	RoleWorktreeBg:  "WORKTREE_BG",
	RoleStatusFg:    "STATUS_FG",
	RoleStatusBg:    "STATUS_BG",
	RoleSyncFg:      "SYNC_FG",
	RoleSyncBg:      "SYNC_BG",
	RoleContextFg:   "CONTEXT_FG",
	RoleContextBg:   "CONTEXT_BG",
	RoleTimeFg:      "TIME_FG",
	RoleTimeBg:      "TIME_BG",
	RoleLinesFg:     "LINES_FG",
	RoleLinesBg:     "LINES_BG",
	RoleRateFg:      "RATE_FG",
	RoleRateBg:      "RATE_BG",
	RoleBurnFg:      "BURN_FG",
	RoleBurnBg:      "BURN_BG",
	RoleAddedFg:     "ADDED_FG",
	RoleRemovedFg:   "REMOVED_FG",
	RoleSeparatorFg: "SEPARATOR_FG",
	RoleBorderFg:    "BORDER_FG",
	RoleLabelFg:     "LABEL_FG",
	RoleMutedFg:     "MUTED_FG",
	RoleBatteryFg:   "BATTERY_FG",
	RoleChipTextFg:  "CHIP_TEXT_FG",
	RoleAlertFg:     "ALERT_FG",
	RoleContextText: "CONTEXT_TEXT",
}

// Key is the role's name in the custom color override file.
func (r Role) Key() string {
	if r >= RoleCount {
		return ""
	}
	return roleKeys[r]
}

func (r Role) String() string {
	return r.Key()
}

// Background reports whether the role holds a background color.
func (r Role) Background() bool {
	switch r {
	case RoleModelBg, RoleDirBg, RoleBranchBg, RoleWorktreeBg, RoleStatusBg,
		RoleSyncBg, RoleContextBg, RoleTimeBg, RoleLinesBg, RoleRateBg, RoleBurnBg:
		return true
	}
	return false
}

// Configurable reports whether the role takes a color code.
func (r Role) Configurable() bool {
	return r < RoleCount && r != RoleContextText
}

// RoleByKey looks a role up by its override key.
func RoleByKey(key string) (Role, bool) {
	for r := Role(0); r < RoleCount; r++ {
		if roleKeys[r] == key && r.Configurable() {
			return r, true
		}
	}
	return 0, false
}
