package domain

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under the XDG base directories.
	AppDirName = "upkeep"

	// ConfigFileName is the name of the user configuration file.
	ConfigFileName = "config.yaml"

	// LockFileName is the name of the run lock file.
	LockFileName = "upkeep.lock"

	// LogFileName is the name of the status log file.
	LogFileName = "upkeep.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/upkeep/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// DefaultStateDir returns $XDG_STATE_HOME/upkeep, the tool's working directory.
func DefaultStateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// DefaultLockPath returns the run lock location inside the state directory.
func DefaultLockPath() string {
	return filepath.Join(DefaultStateDir(), LockFileName)
}

// DefaultLogPath returns the status log location inside the state directory.
func DefaultLogPath() string {
	return filepath.Join(DefaultStateDir(), LogFileName)
}
