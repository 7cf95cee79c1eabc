// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
)

// Defaults applied before the config file and flags.
const (
	DefaultTop         = 10
	DefaultHistorySize = 10
	DefaultSave        = true
	DefaultTheme       = model.ThemeAuto
	DefaultLang        = "en"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analyze AnalyzeConfig `toml:"analyze"`
	UI      UIConfig      `toml:"ui"`
}

// AnalyzeConfig maps analysis and history settings.
type AnalyzeConfig struct {
	Top         *int  `toml:"top"`
	Save        *bool `toml:"save"`
	HistorySize *int  `toml:"history-size"`
}

// UIConfig maps display settings.
type UIConfig struct {
	Theme *string `toml:"theme"`
	Lang  *string `toml:"lang"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Defaults returns the built-in settings. Lang stays empty so the caller
// can resolve it from the environment.
func Defaults() model.Config {
	return model.Config{
		Top:         DefaultTop,
		Save:        DefaultSave,
		HistorySize: DefaultHistorySize,
		Theme:       DefaultTheme,
	}
}

// Apply overlays values present in the file onto cfg.
func (f FileConfig) Apply(cfg model.Config) model.Config {
	if f.Analyze.Top != nil {
		cfg.Top = *f.Analyze.Top
	}
	if f.Analyze.Save != nil {
		cfg.Save = *f.Analyze.Save
	}
	if f.Analyze.HistorySize != nil {
		cfg.HistorySize = *f.Analyze.HistorySize
	}
	if f.UI.Theme != nil {
		cfg.Theme = model.Theme(*f.UI.Theme)
	}
	if f.UI.Lang != nil {
		cfg.Lang = *f.UI.Lang
	}
	return cfg
}

// Validate checks resolved settings.
func Validate(cfg model.Config) error {
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if cfg.HistorySize < 1 {
		return fmt.Errorf("--history-size must be >= 1")
	}
	if _, ok := model.ParseTheme(string(cfg.Theme)); !ok {
		return fmt.Errorf("--theme must be one of auto, light, dark")
	}
	if cfg.Lang != "" && !i18n.IsSupported(cfg.Lang) {
		return fmt.Errorf("--lang must be one of %s", strings.Join(i18n.Supported(), ", "))
	}
	return nil
}

// Template returns the commented config file written by `zscore config`.
func Template() string {
	return fmt.Sprintf(`# zscore configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# top = %d               # Rows in the top-words chart
# save = %t            # Record analyses in history
# history-size = %d      # Maximum history entries kept

[ui]
# theme = %q        # auto, light or dark
# lang = %q           # en or tr
`,
		DefaultTop,
		DefaultSave,
		DefaultHistorySize,
		DefaultTheme,
		DefaultLang,
	)
}
