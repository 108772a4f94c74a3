package config

import "strings"

// Environment variables consulted after the config file.
const (
	EnvTheme     = "PRISMLINE_THEME"
	EnvChipStyle = "PRISMLINE_CHIP_STYLE"
)

// ResolveTheme picks the theme name: flag, then config file, then
// PRISMLINE_THEME, then DefaultTheme. getenv is usually os.Getenv.
func ResolveTheme(flag string, cfg *Config, getenv func(string) string) string {
	return firstNonEmpty(flag, themeOf(cfg), lookup(getenv, EnvTheme), DefaultTheme)
}

// ResolveChipStyle follows the same order as ResolveTheme without a flag.
func ResolveChipStyle(cfg *Config, getenv func(string) string) string {
	var fromFile string
	if cfg != nil {
		fromFile = cfg.ChipStyle
	}
	return firstNonEmpty(fromFile, lookup(getenv, EnvChipStyle), DefaultChipStyle)
}

func themeOf(cfg *Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Theme
}

func lookup(getenv func(string) string, key string) string {
	if getenv == nil {
		return ""
	}
	return getenv(key)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
