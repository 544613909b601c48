package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FromGit reads path as committed at rev ("HEAD", "HEAD~1", a branch, tag
// or hash) in the repository containing repoPath. path may be absolute or
// relative to the repository root.
func FromGit(repoPath, rev, path string) ([]byte, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	rel, err := repoRelative(repo, path)
	if err != nil {
		return nil, err
	}
	file, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s not found at %s: %w", rel, rev, err)
		}
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}
	return []byte(contents), nil
}

func repoRelative(repo *git.Repository, path string) (string, error) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(filepath.Clean(path)), nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), path)
	if err != nil {
		return "", fmt.Errorf("locate %s in repository: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}
