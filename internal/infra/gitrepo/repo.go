// Package gitrepo locates the git repository enclosing a directory.
package gitrepo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/runoshun/taskboard/internal/domain"
)

// Repo describes a discovered repository.
type Repo struct {
	Root   string // Working tree root
	GitDir string // Common .git directory (shared by linked worktrees)
}

// Discover finds the repository containing dir, walking up parent directories.
// It returns domain.ErrNotGitRepository if there is none.
func Discover(dir string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree.
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	root := wt.Filesystem.Root()

	gitDir := filepath.Join(root, git.GitDirName)
	if fs, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = commonDir(fs.Filesystem().Root())
	}

	return &Repo{
		Root:   filepath.Clean(root),
		GitDir: filepath.Clean(gitDir),
	}, nil
}

// DataDir returns the board data directory for the repository.
func (r *Repo) DataDir() string {
	return domain.RepoDataDir(r.GitDir)
}

// commonDir maps a linked worktree's git dir (.git/worktrees/<name>) to the main .git directory.
func commonDir(gitDir string) string {
	parent := filepath.Dir(gitDir)
	if filepath.Base(parent) == "worktrees" {
		return filepath.Dir(parent)
	}
	return gitDir
}
