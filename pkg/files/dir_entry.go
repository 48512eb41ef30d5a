package files

import (
	"os"
	"path/filepath"
	"time"
)

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is a synthetic os.DirEntry for rows that do not come from a real
// directory read, like the parent row or listings built in tests.
type DirEntry struct {
	name  string
	isDir bool
	stat  *entryStat
}

// NewDirEntry returns an entry with the given name. The name must be bare,
// without any path separators.
func NewDirEntry(name string, isDir bool) DirEntry {
	mustBeBareName(name)
	return DirEntry{name: name, isDir: isDir}
}

// NewFileEntry is like NewDirEntry but for a file with known stat data.
func NewFileEntry(name string, size int64, modTime time.Time) DirEntry {
	mustBeBareName(name)
	entry := DirEntry{name: name}
	entry.stat = &entryStat{entry: entry, size: size, modTime: modTime}
	return entry
}

func mustBeBareName(name string) {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

// Info returns a nil os.FileInfo when no stat data was supplied.
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.stat == nil {
		return nil, nil
	}
	return d.stat, nil
}
