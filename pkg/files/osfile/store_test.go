package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("valid_root", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore("/tmp")
		assert.NotNil(t, s)
		assert.Equal(t, "/tmp", s.Root())
		assert.Equal(t, "🖥️test-host", s.RootTitle())
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore("/tmp")
		assert.Equal(t, "🖥️hostname error", s.RootTitle())
	})

	t.Run("empty_root_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewStore("")
		})
	})
}

func TestStore_RootURL(t *testing.T) {
	s := NewStore("/tmp")
	u := s.RootURL()
	assert.Equal(t, "file", u.Scheme)
}

func TestStore_ReadDir(t *testing.T) {
	s := NewStore("/tmp")

	t.Run("lists_children", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0755))

		entries, err := s.ReadDir(context.Background(), dir)
		assert.NoError(t, err)
		if assert.Len(t, entries, 2) {
			assert.Equal(t, "a.txt", entries[0].Name())
			assert.False(t, entries[0].IsDir())
			assert.Equal(t, "b", entries[1].Name())
			assert.True(t, entries[1].IsDir())
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := s.ReadDir(context.Background(), filepath.Join(t.TempDir(), "none"))
		assert.ErrorIs(t, err, files.ErrPathNotFound)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, entries)
	})
}

func TestStore_CreateDir(t *testing.T) {
	s := NewStore("/tmp")
	dir := t.TempDir()

	newDir := filepath.Join(dir, "notes")
	assert.NoError(t, s.CreateDir(context.Background(), newDir))

	info, err := os.Stat(newDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	t.Run("collision", func(t *testing.T) {
		err := s.CreateDir(context.Background(), newDir)
		assert.ErrorIs(t, err, files.ErrNameCollision)

		// The parent is untouched on failure.
		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, s.CreateDir(ctx, filepath.Join(dir, "other")))
	})
}

func TestStore_CreateFile(t *testing.T) {
	s := NewStore("/tmp")
	dir := t.TempDir()

	path := filepath.Join(dir, "a.txt")
	assert.NoError(t, s.CreateFile(context.Background(), path))

	t.Run("collision", func(t *testing.T) {
		err := s.CreateFile(context.Background(), path)
		assert.ErrorIs(t, err, files.ErrNameCollision)
	})
}

func TestStore_Delete(t *testing.T) {
	s := NewStore("/tmp")
	dir := t.TempDir()

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "a.txt")
		assert.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		assert.NoError(t, s.Delete(context.Background(), path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("empty_dir", func(t *testing.T) {
		path := filepath.Join(dir, "empty")
		assert.NoError(t, os.Mkdir(path, 0755))
		assert.NoError(t, s.Delete(context.Background(), path))
	})

	t.Run("non_empty_dir_refused", func(t *testing.T) {
		path := filepath.Join(dir, "full")
		assert.NoError(t, os.Mkdir(path, 0755))
		assert.NoError(t, os.WriteFile(filepath.Join(path, "a.txt"), nil, 0644))

		err := s.Delete(context.Background(), path)
		assert.ErrorIs(t, err, files.ErrDirNotEmpty)

		// Contents survive the refused delete.
		entries, readErr := os.ReadDir(path)
		assert.NoError(t, readErr)
		assert.Len(t, entries, 1)
	})

	t.Run("not_found", func(t *testing.T) {
		err := s.Delete(context.Background(), filepath.Join(dir, "none"))
		assert.ErrorIs(t, err, files.ErrPathNotFound)
	})
}

func TestStore_Rename(t *testing.T) {
	s := NewStore("/tmp")
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	assert.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	t.Run("moves", func(t *testing.T) {
		dst := filepath.Join(dir, "dst.txt")
		assert.NoError(t, s.Rename(context.Background(), src, dst))
		_, err := os.Stat(src)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(dst)
		assert.NoError(t, err)
	})

	t.Run("collision", func(t *testing.T) {
		a := filepath.Join(dir, "a.txt")
		b := filepath.Join(dir, "b.txt")
		assert.NoError(t, os.WriteFile(a, nil, 0644))
		assert.NoError(t, os.WriteFile(b, nil, 0644))
		assert.ErrorIs(t, s.Rename(context.Background(), a, b), files.ErrNameCollision)
	})
}

func TestStore_Copy(t *testing.T) {
	s := NewStore("/tmp")
	dir := t.TempDir()

	t.Run("file", func(t *testing.T) {
		src := filepath.Join(dir, "src.txt")
		assert.NoError(t, os.WriteFile(src, []byte("content"), 0644))
		dst := filepath.Join(dir, "copy.txt")
		assert.NoError(t, s.Copy(context.Background(), src, dst))

		data, err := os.ReadFile(dst)
		assert.NoError(t, err)
		assert.Equal(t, []byte("content"), data)
	})

	t.Run("dir_tree", func(t *testing.T) {
		src := filepath.Join(dir, "tree")
		assert.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0755))
		assert.NoError(t, os.WriteFile(filepath.Join(src, "sub", "f.txt"), []byte("f"), 0644))

		dst := filepath.Join(dir, "tree-copy")
		assert.NoError(t, s.Copy(context.Background(), src, dst))
		data, err := os.ReadFile(filepath.Join(dst, "sub", "f.txt"))
		assert.NoError(t, err)
		assert.Equal(t, []byte("f"), data)
	})

	t.Run("source_missing", func(t *testing.T) {
		err := s.Copy(context.Background(), filepath.Join(dir, "none"), filepath.Join(dir, "d"))
		assert.ErrorIs(t, err, files.ErrPathNotFound)
	})

	t.Run("destination_exists", func(t *testing.T) {
		src := filepath.Join(dir, "src2.txt")
		assert.NoError(t, os.WriteFile(src, nil, 0644))
		err := s.Copy(context.Background(), src, filepath.Join(dir, "src.txt"))
		assert.ErrorIs(t, err, files.ErrNameCollision)
	})
}
