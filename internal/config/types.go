package config

import "time"

const (
	// DefaultTheme is used when neither flag, file nor environment name one.
	DefaultTheme = "2line"
	// DefaultChipStyle is the chip delimiter for the badges layout.
	DefaultChipStyle = "badge"

	appDir          = "prismline"
	configFileName  = "config.yaml"
	colorsFileName  = "colors.conf"
	defaultTimeout  = 500
	defaultLogLevel = "warn"
)

// Config represents the prismline configuration document.
type Config struct {
	Theme        string     `yaml:"theme,omitempty" validate:"omitempty,theme"`
	ChipStyle    string     `yaml:"chip_style,omitempty" validate:"omitempty,chip_style"`
	CustomColors string     `yaml:"custom_colors,omitempty"`
	HiddenModes  bool       `yaml:"hidden_modes,omitempty"`
	Repo         RepoConfig `yaml:"repo,omitempty"`
	LogLevel     string     `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// RepoConfig controls how repository state is collected.
type RepoConfig struct {
	Backend   string `yaml:"backend,omitempty" validate:"oneof=go-git git"`
	TimeoutMS int    `yaml:"timeout_ms,omitempty" validate:"min=1,max=10000"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Repo: RepoConfig{
			Backend:   "go-git",
			TimeoutMS: defaultTimeout,
		},
		LogLevel: defaultLogLevel,
	}
}

// Timeout is the per-query repository timeout.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.Repo.TimeoutMS <= 0 {
		return defaultTimeout * time.Millisecond
	}
	return time.Duration(c.Repo.TimeoutMS) * time.Millisecond
}
