package files

import (
	"os"
	"path"
	"path/filepath"
)

// EntryWithDirPath pairs a directory entry with the directory it lives in.
type EntryWithDirPath struct {
	os.DirEntry
	Dir string
}

func (c EntryWithDirPath) DirPath() string {
	return c.Dir
}

func (c EntryWithDirPath) FullName() string {
	name := c.Name()
	return filepath.Join(c.Dir, name)
}

func (c EntryWithDirPath) String() string {
	name := c.Name()
	return path.Join(c.Dir, name)
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) *EntryWithDirPath {
	return &EntryWithDirPath{
		Dir:      dir,
		DirEntry: entry,
	}
}
