package config

import (
	"os"
	"path/filepath"
)

// RamalHome returns RAMAL_HOME or ~/.ramal default
func RamalHome() string {
	home := os.Getenv("RAMAL_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ramal"
		}
		return filepath.Join(homeDir, ".ramal")
	}
	return ExpandPath(home)
}

// JournalDBPath returns $RAMAL_HOME/journal.db
func JournalDBPath() string {
	return filepath.Join(RamalHome(), "journal.db")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
