package filevoy

import (
	"context"
	"errors"
	"fmt"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/rivo/tview"
)

// confirmDelete asks for confirmation before deleting the selected entry.
// Non-empty folders are refused by the store, not deleted recursively.
func (nav *Navigator) confirmDelete() {
	entry := nav.filesPanel.CurrentEntry()
	if entry == nil {
		nav.ShowErrorText("Nothing selected to delete")
		return
	}

	kind := "file"
	if entry.IsDir() {
		kind = "folder"
	}
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %s %q?", kind, entry.Name())).
		AddButtons([]string{"Delete", "Cancel"})
	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		nav.setAppRoot(nav.Flex, true)
		nav.setAppFocus(nav.filesPanel.table)
		if buttonLabel != "Delete" {
			return
		}
		nav.deleteEntry(entry)
	})
	nav.setAppRoot(modal, true)
}

func (nav *Navigator) deleteEntry(entry *files.EntryWithDirPath) {
	fullName := entry.FullName()
	if err := nav.store.Delete(context.Background(), fullName); err != nil {
		switch {
		case errors.Is(err, files.ErrDirNotEmpty):
			nav.ShowErrorText("Folder is not empty: " + entry.Name())
		case errors.Is(err, files.ErrPathNotFound):
			nav.ShowErrorText("Already gone: " + entry.Name())
			nav.Refresh()
		default:
			nav.ShowError(err)
		}
		return
	}
	if nav.clipboard.path == fullName {
		nav.clipboard.Clear()
	}
	nav.ShowNotice("Deleted: " + entry.Name())
	nav.Refresh()
}
