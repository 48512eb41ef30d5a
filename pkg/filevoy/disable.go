package filevoy

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/filevoy/filevoy/pkg/files"
)

// Entries named with this prefix are parked: kept on disk but marked as
// switched off. The list shows them by their base name in the disabled color.
const disabledPrefix = "DISABLED_"

func isDisabledName(name string) bool {
	return strings.HasPrefix(name, disabledPrefix)
}

func enabledName(name string) string {
	return strings.TrimPrefix(name, disabledPrefix)
}

// toggleDisabled renames the selected entry to flip its disabled prefix.
func (nav *Navigator) toggleDisabled() {
	entry := nav.filesPanel.CurrentEntry()
	if entry == nil {
		nav.ShowErrorText("Nothing selected to enable/disable")
		return
	}
	name := entry.Name()
	newName := disabledPrefix + name
	if isDisabledName(name) {
		newName = enabledName(name)
	}
	oldPath := entry.FullName()
	newPath := path.Join(entry.DirPath(), newName)
	if err := nav.store.Rename(context.Background(), oldPath, newPath); err != nil {
		if errors.Is(err, files.ErrNameCollision) {
			nav.ShowErrorText("Already exists: " + newName)
		} else {
			nav.ShowError(err)
		}
		return
	}
	if nav.clipboard.path == oldPath {
		nav.clipboard.path = newPath
	}
	nav.Refresh()
	nav.selectEntryByName(newName)
}
