package filevoy

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (nav *Navigator) showHelp() {
	modal, _, _ := createHelpModal(nav, nav.Flex)
	nav.setAppRoot(modal, true)
}

func createHelpModal(nav *Navigator, root tview.Primitive) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	const helpText = `F1 - Help
F3 - Open with default app
F5 - Copy to clipboard
F6 - Mark for move
F7 - New folder or file
F8 - Delete (asks first)
F10 - Exit
Ctrl+V - Paste clipboard
Ctrl+T - Edit tags
Ctrl+L - Address bar
Ctrl+F - Search filter
Ctrl+R - Refresh
Ctrl+B - Favorites
Ctrl+D - Enable/disable entry
Alt+. - Show/hide hidden files
Alt+H / Alt+R - Home / Root
Alt+Left/Right - History back/forward
Alt+Up or Backspace - Parent folder`

	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignCenter)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		nav.setAppRoot(root, true)
		nav.setAppFocus(nav.filesPanel.table)
	}

	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" FileVoy - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 44, 0).
		SetRows(0, 20, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
