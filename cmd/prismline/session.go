package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/config"
	"github.com/alexisbeaulieu97/prismline/internal/logger"
	"github.com/alexisbeaulieu97/prismline/internal/render"
)

// session is the resolved configuration a command runs with.
type session struct {
	cfg        *config.Config
	log        *logger.Logger
	themeName  string
	chipStyle  render.ChipStyle
	colorsPath string
	overrides  colors.Overrides
}

// getenv is swapped in tests.
var getenv = os.Getenv

// loadSession resolves config, logger, theme and color overrides. Config
// and override problems are logged and replaced by defaults; only a logger
// that cannot be built is an error.
func loadSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, cfgErr := loadConfig(flags.configPath)

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		Verbose:       flags.verbose,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	if cfgErr != nil {
		log.Error(cfgErr, "config ignored, using defaults")
	}

	s := &session{
		cfg:       cfg,
		log:       log,
		themeName: config.ResolveTheme(flags.theme, cfg, getenv),
		chipStyle: render.ParseChipStyle(config.ResolveChipStyle(cfg, getenv)),
	}

	s.colorsPath, err = cfg.CustomColorsPath()
	if err != nil {
		log.Error(err, "custom colors path unavailable")
		s.colorsPath = ""
	}
	s.overrides, err = colors.LoadOverrides(s.colorsPath)
	if err != nil && !os.IsNotExist(err) {
		log.WithFields(map[string]any{"path": s.colorsPath}).Error(err, "custom colors unreadable")
	}

	log.WithFields(map[string]any{
		"theme":      s.themeName,
		"chip_style": s.chipStyle.String(),
		"backend":    cfg.Repo.Backend,
		"overrides":  len(s.overrides),
	}).Debug("session resolved")

	return s, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default(), err
	}
	return cfg, nil
}
