package domain

import (
	"path/filepath"
	"strings"
)

// AppDirName is the data directory name under a git directory.
const AppDirName = "board"

// GlobalDirName is the directory name under XDG_CONFIG_HOME and XDG_DATA_HOME.
const GlobalDirName = "taskboard"

// ConfigFileName is the configuration file name in the data and global config directories.
const ConfigFileName = "config.toml"

// DataDirEnv overrides the data directory.
const DataDirEnv = "BOARD_DIR"

// RepoDataDir returns the data directory inside a git directory.
func RepoDataDir(gitDir string) string {
	return filepath.Join(gitDir, AppDirName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, GlobalDirName)
}

// GlobalDataDir returns the fallback data directory used outside git repositories.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func GlobalDataDir(dataHome string) string {
	return filepath.Join(dataHome, GlobalDirName)
}

// LocalConfigPath returns the config file path inside a data directory.
func LocalConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// GlobalLogPath returns the path to the log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "board.log")
}

// FileStoreDir returns the directory used by the file storage backend.
func FileStoreDir(dataDir string) string {
	return filepath.Join(dataDir, "store")
}

// SQLiteStorePath returns the database path used by the sqlite storage backend.
func SQLiteStorePath(dataDir string) string {
	return filepath.Join(dataDir, "board.db")
}

// ValidateKey reports whether key can be used as a storage key.
// Keys must be non-empty and must not contain path separators or start with a dot.
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return ErrInvalidKey
	}
	return nil
}
