package filevoy

import (
	"os"

	"github.com/filevoy/filevoy/pkg/files/osfile"
	"github.com/filevoy/filevoy/pkg/filevoy/navigator"
	"github.com/filevoy/filevoy/pkg/tags"
	"github.com/rivo/tview"
)

// SetupApp wires the navigator into the application and makes it the root
// primitive.
func SetupApp(app *tview.Application, startDir string) {
	app.EnableMouse(true)

	store := osfile.NewStore("/")
	options := make([]NavigatorOption, 0, 1)
	if home, err := os.UserHomeDir(); err == nil {
		if tagManager, err := tags.NewManager(home); err == nil {
			options = append(options, WithTagManager(tagManager))
		}
	}

	nav := NewNavigator(navigator.NewApp(app), store, startDir, options...)
	app.SetRoot(nav, true)
	nav.SetFocus()
}
