package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	err := os.WriteFile(src, []byte("content"), 0640)
	assert.NoError(t, err)

	t.Run("copies_content_and_mode", func(t *testing.T) {
		err := CopyFile(src, dst)
		assert.NoError(t, err)

		data, err := os.ReadFile(dst)
		assert.NoError(t, err)
		assert.Equal(t, []byte("content"), data)

		info, err := os.Stat(dst)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	})

	t.Run("destination_exists", func(t *testing.T) {
		err := CopyFile(src, dst)
		assert.Error(t, err)
	})

	t.Run("source_missing", func(t *testing.T) {
		err := CopyFile(filepath.Join(tmpDir, "none.txt"), filepath.Join(tmpDir, "x.txt"))
		assert.Error(t, err)
	})
}

func TestCopyDir(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	assert.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("b"), 0644))

	dst := filepath.Join(tmpDir, "dst")
	err := CopyDir(src, dst)
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	data, err = os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("b"), data)

	t.Run("destination_exists", func(t *testing.T) {
		err := CopyDir(src, dst)
		assert.Error(t, err)
	})

	t.Run("destination_inside_source", func(t *testing.T) {
		err := CopyDir(src, filepath.Join(src, "sub", "copy"))
		assert.Error(t, err)
		// nothing was written under the source
		_, statErr := os.Stat(filepath.Join(src, "sub", "copy"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("destination_is_source", func(t *testing.T) {
		err := CopyDir(src, src+string(filepath.Separator))
		assert.Error(t, err)
	})

	t.Run("sibling_with_source_prefix", func(t *testing.T) {
		// "src2" starts with "src" but is not inside it
		sibling := filepath.Join(tmpDir, "src2")
		assert.NoError(t, CopyDir(src, sibling))
		_, err := os.Stat(filepath.Join(sibling, "a.txt"))
		assert.NoError(t, err)
	})
}
