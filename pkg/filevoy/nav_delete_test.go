package filevoy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestConfirmDelete_showsModal(t *testing.T) {
	nav, app, _ := newTestNavigator(t)

	nav.selectEntryByName("readme.txt")
	nav.confirmDelete()

	assert.NotZero(t, app.root)
}

func TestDeleteEntry_file(t *testing.T) {
	nav, _, dir := newTestNavigator(t)

	nav.selectEntryByName("readme.txt")
	entry := nav.filesPanel.CurrentEntry()
	assert.NotZero(t, entry)

	nav.deleteEntry(entry)

	_, err := os.Stat(filepath.Join(dir, "readme.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, []string{"docs", "music", "notes.md"}, visibleNames(nav))
}

func TestDeleteEntry_emptyDir(t *testing.T) {
	nav, _, dir := newTestNavigator(t)

	nav.selectEntryByName("music")
	entry := nav.filesPanel.CurrentEntry()
	assert.NotZero(t, entry)

	nav.deleteEntry(entry)

	_, err := os.Stat(filepath.Join(dir, "music"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteEntry_nonEmptyDirRefused(t *testing.T) {
	nav, _, dir := newTestNavigator(t)
	kept := filepath.Join(dir, "docs", "keep.txt")
	mustWriteFile(t, kept, "keep")
	nav.Refresh()

	nav.selectEntryByName("docs")
	entry := nav.filesPanel.CurrentEntry()
	assert.NotZero(t, entry)

	nav.deleteEntry(entry)

	assert.Contains(t, nav.bottom.notice, "not empty")
	data, err := os.ReadFile(kept)
	assert.NoError(t, err)
	assert.Equal(t, "keep", string(data))
	assert.Equal(t, []string{"docs", "music", "notes.md", "readme.txt"}, visibleNames(nav))
}

func TestDeleteEntry_alreadyGone(t *testing.T) {
	nav, _, dir := newTestNavigator(t)

	nav.selectEntryByName("notes.md")
	entry := nav.filesPanel.CurrentEntry()
	assert.NotZero(t, entry)
	assert.NoError(t, os.Remove(filepath.Join(dir, "notes.md")))

	nav.deleteEntry(entry)

	assert.Contains(t, nav.bottom.notice, "Already gone")
}

func TestDeleteEntry_clearsClipboardSlot(t *testing.T) {
	nav, _, _ := newTestNavigator(t)

	nav.selectEntryByName("readme.txt")
	nav.copyCurrent()
	entry := nav.filesPanel.CurrentEntry()
	nav.deleteEntry(entry)

	assert.True(t, nav.clipboard.IsEmpty())
}
