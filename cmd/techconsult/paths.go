package main

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = ".techconsult"

func defaultAppPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, appDirName, name), nil
}

func defaultConfigPath() (string, error) {
	return defaultAppPath("config.yaml")
}

func defaultPreferencesPath() (string, error) {
	return defaultAppPath("preferences.json")
}

func defaultLogPath() (string, error) {
	return defaultAppPath("techconsult.log")
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// resolvePath picks configured over fallback and expands "~".
func resolvePath(configured string, fallback func() (string, error)) (string, error) {
	if strings.TrimSpace(configured) == "" {
		return fallback()
	}
	return expandHome(configured)
}
