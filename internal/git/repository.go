// Package git locates the repository a store and its configuration live in.
package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// Repository is an opened git working tree.
type Repository struct {
	repo    *gogit.Repository
	path    string
	workDir string
}

// Open opens the git repository containing path, searching parent
// directories for the .git directory.
func Open(path string) (*Repository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	root := wt.Filesystem.Root()

	return &Repository{
		repo:    r,
		path:    filepath.Join(root, ".git"),
		workDir: root,
	}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) WorkingDirectory() string {
	return r.workDir
}

// HeadSha returns the full hash of the commit HEAD points to.
func (r *Repository) HeadSha() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// FindRoot returns the working directory of the repository containing path.
// When path is not inside a repository, its absolute form is returned so
// lookups fall back to the given directory.
func FindRoot(path string) string {
	if r, err := Open(path); err == nil {
		return r.WorkingDirectory()
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
