package filevoy

import (
	"strings"

	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// topBar holds the address input and the search filter input.
type topBar struct {
	*tview.Flex
	nav     *Navigator
	address *tview.InputField
	search  *tview.InputField
}

func newTopBar(nav *Navigator) *topBar {
	b := &topBar{
		nav:  nav,
		Flex: tview.NewFlex(),
	}

	b.address = tview.NewInputField().
		SetLabel(" Path: ").
		SetLabelColor(tcell.ColorSlateGray)
	b.address.SetDoneFunc(b.addressDone)

	b.search = tview.NewInputField().
		SetLabel(" Search: ").
		SetLabelColor(tcell.ColorSlateGray)
	b.search.SetChangedFunc(b.searchChanged)
	b.search.SetDoneFunc(b.searchDone)

	b.AddItem(b.address, 0, 3, false)
	b.AddItem(b.search, 0, 1, false)
	return b
}

// SetPath updates the address text without navigating.
func (b *topBar) SetPath(path string) {
	b.address.SetText(path)
}

// ResetSearch empties the search box, e.g. when the current directory
// changes.
func (b *topBar) ResetSearch() {
	b.search.SetText("")
}

func (b *topBar) addressDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		dir := strings.TrimSpace(b.address.GetText())
		if dir == "" {
			b.SetPath(b.nav.CurrentDir())
			b.nav.setAppFocus(b.nav.filesPanel.table)
			return
		}
		dir = fsutils.ExpandHome(dir)
		if ok, err := fsutils.DirExists(dir); err != nil || !ok {
			b.nav.ShowErrorText("Not a folder: " + dir)
			b.SetPath(b.nav.CurrentDir())
			return
		}
		b.nav.goDir(dir)
		b.nav.setAppFocus(b.nav.filesPanel.table)
	case tcell.KeyEscape:
		b.SetPath(b.nav.CurrentDir())
		b.nav.setAppFocus(b.nav.filesPanel.table)
	}
}

func (b *topBar) searchChanged(text string) {
	b.nav.SetSearchFilter(text)
}

func (b *topBar) searchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		b.nav.setAppFocus(b.nav.filesPanel.table)
	case tcell.KeyEscape:
		b.search.SetText("")
		b.nav.SetSearchFilter("")
		b.nav.setAppFocus(b.nav.filesPanel.table)
	}
}
