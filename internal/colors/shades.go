package colors

// xterm 256-color codes per role. Every configurable role must have an entry;
// TestShadeTablesAreComplete enforces it.

var pastelBase = [RoleCount]uint8{
	RoleModelFg:     183, // lavender
	RoleModelBg:     60,
	RoleDirFg:       117, // sky
	RoleDirBg:       24,
	RoleBranchFg:    151, // mint
	RoleBranchBg:    23,
	RoleWorktreeFg:  158,
	RoleWorktreeBg:  29,
	RoleStatusFg:    223, // peach
	RoleStatusBg:    94,
	RoleSyncFg:      189,
	RoleSyncBg:      61,
	RoleContextFg:   157,
	RoleContextBg:   22,
	RoleTimeFg:      229,
	RoleTimeBg:      58,
	RoleLinesFg:     195,
	RoleLinesBg:     31,
	RoleRateFg:      219,
	RoleRateBg:      96,
	RoleBurnFg:      216,
	RoleBurnBg:      130,
	RoleAddedFg:     120,
	RoleRemovedFg:   210,
	RoleSeparatorFg: 244,
	RoleBorderFg:    103,
	RoleLabelFg:     250,
	RoleMutedFg:     242,
	RoleBatteryFg:   114,
	RoleChipTextFg:  234,
	RoleAlertFg:     203,
}

// pastelTiers re-colors the pressure-sensitive roles.
var pastelTiers = [tierCount]map[Role]uint8{
	TierNormal: {
		RoleContextFg:   157,
		RoleContextBg:   22,
		RoleBatteryFg:   114,
		RoleModelFg:     183,
		RoleModelBg:     60,
		RoleTimeFg:      229,
		RoleBorderFg:    103,
		RoleSeparatorFg: 244,
		RoleLabelFg:     250,
		RoleStatusFg:    223,
	},
	TierWarning: {
		RoleContextFg:   222,
		RoleContextBg:   136,
		RoleBatteryFg:   221,
		RoleModelFg:     225,
		RoleModelBg:     96,
		RoleTimeFg:      223,
		RoleBorderFg:    180,
		RoleSeparatorFg: 180,
		RoleLabelFg:     230,
		RoleStatusFg:    222,
	},
	TierCritical: {
		RoleContextFg:   217,
		RoleContextBg:   124,
		RoleBatteryFg:   203,
		RoleModelFg:     224,
		RoleModelBg:     131,
		RoleTimeFg:      217,
		RoleBorderFg:    174,
		RoleSeparatorFg: 174,
		RoleLabelFg:     224,
		RoleStatusFg:    217,
	},
}

// Mono foregrounds are grayscale only (232-255).
var monoBase = [RoleCount]uint8{
	RoleModelFg:     255,
	RoleModelBg:     238,
	RoleDirFg:       252,
	RoleDirBg:       237,
	RoleBranchFg:    253,
	RoleBranchBg:    239,
	RoleWorktreeFg:  251,
	RoleWorktreeBg:  238,
	RoleStatusFg:    250,
	RoleStatusBg:    237,
	RoleSyncFg:      250,
	RoleSyncBg:      236,
	RoleContextFg:   248,
	RoleContextBg:   236,
	RoleTimeFg:      249,
	RoleTimeBg:      237,
	RoleLinesFg:     250,
	RoleLinesBg:     238,
	RoleRateFg:      251,
	RoleRateBg:      239,
	RoleBurnFg:      252,
	RoleBurnBg:      240,
	RoleAddedFg:     254,
	RoleRemovedFg:   245,
	RoleSeparatorFg: 242,
	RoleBorderFg:    244,
	RoleLabelFg:     247,
	RoleMutedFg:     240,
	RoleBatteryFg:   250,
	RoleChipTextFg:  233,
	RoleAlertFg:     255,
}

// monoBrightness shifts the pressure-sensitive roles toward white.
var monoBrightness = [tierCount]uint8{0, 3, 6}

var monoTierRoles = []Role{RoleContextFg, RoleBatteryFg, RoleModelFg, RoleTimeFg, RoleBorderFg, RoleLabelFg}
