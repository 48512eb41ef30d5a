package files

import (
	"os"
	"path"
	"strings"
	"time"
)

// DirContext is a directory within a store together with its last read
// children. It doubles as a tree node reference.
type DirContext struct {
	store     Store
	path      string
	children  []os.DirEntry
	timestamp time.Time
}

func NewDirContext(store Store, dirPath string, children []os.DirEntry) *DirContext {
	c := &DirContext{
		store:    store,
		path:     dirPath,
		children: children,
	}
	if children != nil {
		c.timestamp = time.Now()
	}
	return c
}

func (c *DirContext) Store() Store {
	return c.store
}

func (c *DirContext) Path() string {
	return c.path
}

// Timestamp is the time the children were last set.
func (c *DirContext) Timestamp() time.Time {
	return c.timestamp
}

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
	c.timestamp = time.Now()
}

// Children returns a copy so callers can not mutate the context.
func (c *DirContext) Children() []os.DirEntry {
	if c.children == nil {
		return nil
	}
	children := make([]os.DirEntry, len(c.children))
	copy(children, c.children)
	return children
}

func (c *DirContext) Entries() []*EntryWithDirPath {
	entries := make([]*EntryWithDirPath, len(c.children))
	for i, child := range c.children {
		entries[i] = NewEntryWithDirPath(child, c.path)
	}
	return entries
}

func (c *DirContext) DirPath() string {
	if c.path == "" {
		return ""
	}
	return path.Dir(c.path)
}

func (c *DirContext) FullName() string {
	return c.path
}

func (c *DirContext) String() string {
	return c.path
}

func (c *DirContext) Name() string {
	if c.path == "" {
		return ""
	}
	if c.path == "/" {
		return "/"
	}
	trimmed := strings.TrimSuffix(c.path, "/")
	return path.Base(trimmed)
}

func (c *DirContext) IsDir() bool {
	return true
}

func (c *DirContext) Type() os.FileMode {
	return os.ModeDir
}

func (c *DirContext) Info() (os.FileInfo, error) {
	if c.path == "" {
		return nil, nil
	}
	if c.store != nil && c.store.RootURL().Scheme == "file" {
		return os.Stat(c.path)
	}
	return nil, nil
}
