// Package paths provides centralized path handling for packup.
// It implements XDG Base Directory specification compliance and
// keeps every filesystem location the tool relies on in one place.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvStagingDir overrides the base directory under which staging
	// areas are created
	EnvStagingDir = "PACKUP_STAGING_DIR"

	// EnvStateDir overrides the XDG state directory for packup
	EnvStateDir = "PACKUP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// PackupDirName is the directory name for packup-specific files
	PackupDirName = "packup"

	// ConfigFileName is the name of the project configuration file
	ConfigFileName = "packup.toml"

	// HiddenConfigFileName is the dotted variant of the config file
	HiddenConfigFileName = ".packup.toml"

	// LogFileName is the name of the log file
	LogFileName = "packup.log"

	// StagingPrefix is the name prefix for staging directories
	StagingPrefix = "packup-stage-"
)

// StateDir returns the directory for packup state files, honoring
// PACKUP_STATE_DIR and falling back to the XDG state home.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, PackupDirName)
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// StagingBaseDir returns the directory under which staging areas are
// created, honoring PACKUP_STAGING_DIR and falling back to the platform
// temp directory. Staging areas must never live inside the project tree,
// so overrides pointing there are a user error.
func StagingBaseDir() string {
	if dir := os.Getenv(EnvStagingDir); dir != "" {
		return ExpandHome(dir)
	}
	return os.TempDir()
}

// ConfigFilePaths returns the candidate project config file paths for a
// project root, in priority order. The first one that exists wins.
func ConfigFilePaths(root string) []string {
	return []string{
		filepath.Join(root, ConfigFileName),
		filepath.Join(root, HiddenConfigFileName),
	}
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
