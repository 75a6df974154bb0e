package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/gitrepo"
)

// ResolveDataDir picks the data directory for dir:
// $BOARD_DIR if set, else <git dir>/board inside a git repository,
// else $XDG_DATA_HOME/taskboard (or ~/.local/share/taskboard).
// repoRoot is empty outside a git repository.
func ResolveDataDir(dir string, getenv func(string) string) (dataDir, repoRoot string, err error) {
	if v := getenv(domain.DataDirEnv); v != "" {
		abs, err := filepath.Abs(v)
		if err != nil {
			return "", "", err
		}
		return abs, "", nil
	}

	repo, err := gitrepo.Discover(dir)
	switch {
	case err == nil:
		return repo.DataDir(), repo.Root, nil
	case !errors.Is(err, domain.ErrNotGitRepository):
		return "", "", err
	}

	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", domain.ErrNoDataDir
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.GlobalDataDir(dataHome), "", nil
}
