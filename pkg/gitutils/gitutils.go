package gitutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var osStat = os.Stat

// GetRepositoryRoot walks parent directories to find the work tree root
// containing dirPath, or returns "" if dirPath is not inside a repository.
func GetRepositoryRoot(dirPath string) (repoRootDir string) {
	dirPath, err := filepath.Abs(dirPath)
	if err != nil {
		return ""
	}
	for {
		gitPath := filepath.Join(dirPath, ".git")
		if stat, err := osStat(gitPath); err == nil {
			if stat.IsDir() {
				return dirPath
			}
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			break
		}
		dirPath = parent
	}
	return ""
}

type DirGitStatus struct {
	Branch       string
	FilesChanged int
}

func (s *DirGitStatus) String() string {
	if s == nil {
		return ""
	}
	if s.FilesChanged == 0 {
		return fmt.Sprintf("[gray]🌿%s±0[-]", s.Branch)
	}
	return fmt.Sprintf("[gray]🌿%s[-][yellow]±%d[-]", s.Branch, s.FilesChanged)
}

// GetGitStatus returns a brief git status for the given work tree root,
// or nil if the directory is not a repository.
func GetGitStatus(dir string) *DirGitStatus {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil
	}

	res := &DirGitStatus{}

	head, err := repo.Head()
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			res.Branch = "master"
		} else {
			return nil
		}
	} else {
		if head.Name().IsBranch() {
			res.Branch = head.Name().Short()
		} else {
			res.Branch = head.Hash().String()[:7]
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return res
	}

	status, err := worktree.Status()
	if err != nil {
		return res
	}

	if status.IsClean() {
		return res
	}

	res.FilesChanged = len(status)
	return res
}
