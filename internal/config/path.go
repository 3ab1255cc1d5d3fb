// Package config loads and validates grocer's settings.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user config directory.
const AppName = "grocer"

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// SearchPaths returns the directories searched for config.yaml, in search order:
// the user config directory, then the working directory.
func SearchPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return []string{filepath.Join(home, ".config", AppName), "."}, nil
}
