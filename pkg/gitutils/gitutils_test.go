package gitutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
)

func TestDirGitStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status *DirGitStatus
		want   string
	}{
		{"nil", nil, ""},
		{"clean", &DirGitStatus{Branch: "main"}, "[gray]🌿main±0[-]"},
		{"dirty", &DirGitStatus{Branch: "feature", FilesChanged: 2}, "[gray]🌿feature[-][yellow]±2[-]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("DirGitStatus.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetRepositoryRoot(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("not_a_repo", func(t *testing.T) {
		sub := filepath.Join(tempDir, "plain")
		assert.NoError(t, os.Mkdir(sub, 0755))
		assert.Equal(t, "", GetRepositoryRoot(sub))
	})

	t.Run("repo_root_and_subdir", func(t *testing.T) {
		root := filepath.Join(tempDir, "repo")
		sub := filepath.Join(root, "a", "b")
		assert.NoError(t, os.MkdirAll(sub, 0755))
		assert.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

		assert.Equal(t, root, GetRepositoryRoot(root))
		assert.Equal(t, root, GetRepositoryRoot(sub))
	})

	t.Run("git_file_is_not_a_repo_marker", func(t *testing.T) {
		dir := filepath.Join(tempDir, "worktree-link")
		assert.NoError(t, os.Mkdir(dir, 0755))
		assert.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere"), 0644))
		assert.Equal(t, "", GetRepositoryRoot(dir))
	})
}

func TestGetGitStatus(t *testing.T) {
	t.Run("not_a_repo", func(t *testing.T) {
		assert.Nil(t, GetGitStatus(t.TempDir()))
	})

	t.Run("repo_without_commits", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		assert.NoError(t, err)

		status := GetGitStatus(dir)
		if assert.NotNil(t, status) {
			assert.Equal(t, "master", status.Branch)
		}
	})

	t.Run("repo_with_commit_and_untracked_file", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		assert.NoError(t, err)

		assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
		wt, err := repo.Worktree()
		assert.NoError(t, err)
		_, err = wt.Add("a.txt")
		assert.NoError(t, err)
		_, err = wt.Commit("initial", &git.CommitOptions{
			Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
		})
		assert.NoError(t, err)

		status := GetGitStatus(dir)
		if assert.NotNil(t, status) {
			assert.Equal(t, "master", status.Branch)
			assert.Equal(t, 0, status.FilesChanged)
		}

		assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))
		status = GetGitStatus(dir)
		if assert.NotNil(t, status) {
			assert.Equal(t, 1, status.FilesChanged)
		}
	})
}
