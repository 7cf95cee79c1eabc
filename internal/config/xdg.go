// Package config provides XDG path helpers.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "zscore"

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, appName, appName+".db")
}

// Reload re-reads XDG environment variables.
func Reload() {
	xdg.Reload()
}
