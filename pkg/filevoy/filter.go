package filevoy

import (
	"os"
	"strings"
)

// Filter decides which directory entries the files panel shows. Search is
// reset on navigation; ShowHidden is a session toggle and survives it.
type Filter struct {
	ShowHidden bool
	// Search is a case-insensitive substring match against the entry name
	// or any of its tags.
	Search string
}

func (f Filter) IsEmpty() bool {
	return f.Search == "" && !f.ShowHidden
}

func (f Filter) IsVisible(entry os.DirEntry, tags []string) bool {
	name := entry.Name()
	if !f.ShowHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(name), needle) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
