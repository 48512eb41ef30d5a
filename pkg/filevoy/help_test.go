package filevoy

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func TestHelpModal(t *testing.T) {
	nav, app, _ := newTestNavigator(t)

	modal, helpView, button := createHelpModal(nav, nav.Flex)
	assert.NotZero(t, modal)
	assert.Contains(t, helpView.GetText(true), "F8 - Delete")

	nav.showHelp()
	assert.NotZero(t, app.root)

	// escape closes and restores the main screen
	capture := button.GetInputCapture()
	assert.Zero(t, capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal[tview.Primitive](t, nav.Flex, app.root)
}
