package domain

import "testing"

func TestPaths(t *testing.T) {
	dataDir := "/repo/.git/board"

	t.Run("RepoDataDir", func(t *testing.T) {
		if got := RepoDataDir("/repo/.git"); got != dataDir {
			t.Errorf("RepoDataDir() = %q, want %q", got, dataDir)
		}
	})

	t.Run("GlobalLogPath", func(t *testing.T) {
		want := "/repo/.git/board/logs/board.log"
		if got := GlobalLogPath(dataDir); got != want {
			t.Errorf("GlobalLogPath(%q) = %q, want %q", dataDir, got, want)
		}
	})

	t.Run("LocalConfigPath", func(t *testing.T) {
		want := "/repo/.git/board/config.toml"
		if got := LocalConfigPath(dataDir); got != want {
			t.Errorf("LocalConfigPath(%q) = %q, want %q", dataDir, got, want)
		}
	})

	t.Run("FileStoreDir", func(t *testing.T) {
		want := "/repo/.git/board/store"
		if got := FileStoreDir(dataDir); got != want {
			t.Errorf("FileStoreDir(%q) = %q, want %q", dataDir, got, want)
		}
	})

	t.Run("SQLiteStorePath", func(t *testing.T) {
		want := "/repo/.git/board/board.db"
		if got := SQLiteStorePath(dataDir); got != want {
			t.Errorf("SQLiteStorePath(%q) = %q, want %q", dataDir, got, want)
		}
	})

	t.Run("GlobalConfigDir", func(t *testing.T) {
		want := "/home/u/.config/taskboard"
		if got := GlobalConfigDir("/home/u/.config"); got != want {
			t.Errorf("GlobalConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"devtaskmanager_issues", true},
		{"issues-v2", true},
		{"", false},
		{".hidden", false},
		{"../escape", false},
		{"a/b", false},
		{`a\b`, false},
	}
	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if (err == nil) != tt.valid {
			t.Errorf("ValidateKey(%q) error = %v, want valid=%v", tt.key, err, tt.valid)
		}
	}
}
