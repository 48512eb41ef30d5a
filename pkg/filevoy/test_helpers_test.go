package filevoy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filevoy/filevoy/pkg/files/osfile"
	"github.com/filevoy/filevoy/pkg/filevoy/fvfav"
	"github.com/filevoy/filevoy/pkg/tags"
)

// newTestNavigator builds a navigator rooted in a temp directory with two
// subfolders and two files.
func newTestNavigator(t *testing.T) (*Navigator, *testApp, string) {
	t.Helper()

	dir := t.TempDir()
	mustMkdir(t, filepath.Join(dir, "docs"))
	mustMkdir(t, filepath.Join(dir, "music"))
	mustWriteFile(t, filepath.Join(dir, "readme.txt"), "hello")
	mustWriteFile(t, filepath.Join(dir, "notes.md"), "# notes")

	origGetFavorites := getFavorites
	origAddFavorite := addFavorite
	origDeleteFavorite := deleteFavorite
	t.Cleanup(func() {
		getFavorites = origGetFavorites
		addFavorite = origAddFavorite
		deleteFavorite = origDeleteFavorite
	})
	getFavorites = func() ([]fvfav.Favorite, error) {
		return []fvfav.Favorite{{Path: "/", Description: "Root"}}, nil
	}
	addFavorite = func(fvfav.Favorite) error { return nil }
	deleteFavorite = func(fvfav.Favorite) error { return nil }

	tagManager, err := tags.NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	app := &testApp{}
	nav := NewNavigator(app, osfile.NewStore("/"), dir, WithTagManager(tagManager))
	if nav == nil {
		t.Fatal("nav is nil")
	}
	return nav, app, dir
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// visibleNames returns the names currently shown in the files table, without
// the parent row.
func visibleNames(nav *Navigator) []string {
	rows := nav.filesPanel.rows
	if rows == nil {
		return nil
	}
	names := make([]string, 0, len(rows.VisibleEntries))
	for _, entry := range rows.VisibleEntries {
		names = append(names, entry.Name())
	}
	return names
}
