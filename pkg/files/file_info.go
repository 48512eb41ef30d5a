package files

import (
	"os"
	"time"
)

var _ os.FileInfo = (*entryStat)(nil)

// entryStat backs DirEntry.Info for synthetic entries.
type entryStat struct {
	entry   DirEntry
	size    int64
	modTime time.Time
}

func (s *entryStat) Name() string       { return s.entry.name }
func (s *entryStat) Size() int64        { return s.size }
func (s *entryStat) Mode() os.FileMode  { return s.entry.Type() }
func (s *entryStat) ModTime() time.Time { return s.modTime }
func (s *entryStat) IsDir() bool        { return s.entry.isDir }
func (s *entryStat) Sys() any           { return nil }
