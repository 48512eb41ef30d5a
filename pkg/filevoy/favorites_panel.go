package filevoy

import (
	"github.com/filevoy/filevoy/pkg/filevoy/fvfav"
	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	addFavorite    = fvfav.AddFavorite
	deleteFavorite = fvfav.DeleteFavorite
	getFavorites   = fvfav.GetFavorites
)

// favoritesPanel lists bookmarked folders in the left column. Enter jumps to
// the folder, 'a' bookmarks the current one, 'd' removes the selection.
type favoritesPanel struct {
	*tview.Flex
	nav   *Navigator
	list  *tview.List
	items []fvfav.Favorite
}

func newFavoritesPanel(nav *Navigator) *favoritesPanel {
	f := &favoritesPanel{
		nav:  nav,
		Flex: tview.NewFlex().SetDirection(tview.FlexRow),
		list: tview.NewList(),
	}
	f.SetBorder(true)
	f.SetTitle(" Favorites ")
	f.list.SetSecondaryTextColor(tcell.ColorGray)
	footer := tview.NewTextView().
		SetText("a: add, d: delete, esc: back").
		SetTextColor(tcell.ColorGray)
	f.AddItem(f.list, 0, 1, true)
	f.AddItem(footer, 1, 0, false)
	f.list.SetInputCapture(f.inputCapture)
	f.reload()
	return f
}

func (f *favoritesPanel) reload() {
	items, err := getFavorites()
	if err != nil {
		f.nav.ShowError(err)
		return
	}
	f.items = items
	f.list.Clear()
	for i := range f.items {
		item := f.items[i]
		f.list.AddItem(dirEmoji+item.Path, item.Description, item.Shortcut, func() {
			f.nav.hideFavorites()
			f.nav.goDir(fsutils.ExpandHome(item.Path))
		})
	}
}

func (f *favoritesPanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		f.nav.hideFavorites()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a':
			f.addCurrent()
			return nil
		case 'd':
			f.deleteSelected()
			return nil
		}
	}
	return event
}

func (f *favoritesPanel) addCurrent() {
	fav := fvfav.Favorite{Path: f.nav.CurrentDir()}
	if err := addFavorite(fav); err != nil {
		f.nav.ShowError(err)
		return
	}
	f.reload()
}

func (f *favoritesPanel) deleteSelected() {
	i := f.list.GetCurrentItem()
	if i < 0 || i >= len(f.items) {
		return
	}
	if err := deleteFavorite(f.items[i]); err != nil {
		f.nav.ShowError(err)
		return
	}
	f.reload()
}
