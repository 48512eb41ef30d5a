// Package tags keeps user-assigned labels for files and directories.
// Tags live in a .tags.json file at the manager's base directory, keyed by
// the cleaned absolute path of the tagged entry.
package tags

import (
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/filevoy/filevoy/pkg/fsutils"
)

const tagsFileName = ".tags.json"

type Manager struct {
	baseDir  string
	filePath string

	mu   sync.RWMutex
	tags map[string][]string
}

func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = fsutils.ExpandHome("~")
	}
	m := &Manager{
		baseDir:  baseDir,
		filePath: filepath.Join(baseDir, tagsFileName),
		tags:     map[string][]string{},
	}
	if err := fsutils.ReadJSONFile(m.filePath, false, &m.tags); err != nil {
		return nil, err
	}
	if m.tags == nil {
		m.tags = map[string][]string{}
	}
	return m, nil
}

func (m *Manager) BaseDir() string {
	return m.baseDir
}

func normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (m *Manager) Get(path string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tags := m.tags[normalize(path)]
	if len(tags) == 0 {
		return nil
	}
	return slices.Clone(tags)
}

func (m *Manager) Add(path, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalize(path)
	if slices.Contains(m.tags[key], tag) {
		return nil
	}
	m.tags[key] = append(m.tags[key], tag)
	return m.save()
}

func (m *Manager) Remove(path, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalize(path)
	current := m.tags[key]
	i := slices.Index(current, tag)
	if i < 0 {
		return nil
	}
	current = slices.Delete(current, i, i+1)
	if len(current) == 0 {
		delete(m.tags, key)
	} else {
		m.tags[key] = current
	}
	return m.save()
}

// Set replaces all tags of a path; an empty list removes the entry.
func (m *Manager) Set(path string, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := normalize(path)
	if len(tags) == 0 {
		delete(m.tags, key)
	} else {
		m.tags[key] = slices.Clone(tags)
	}
	return m.save()
}

// TaggedPaths returns all tagged paths in stable order.
func (m *Manager) TaggedPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.tags))
	for path := range m.tags {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (m *Manager) save() error {
	return fsutils.WriteJSONFile(m.filePath, m.tags)
}
