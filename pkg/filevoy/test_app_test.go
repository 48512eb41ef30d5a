package filevoy

import "github.com/rivo/tview"

// testApp is a minimal navigator.App implementation that records focus and
// root changes without a terminal.
type testApp struct {
	focused tview.Primitive
	root    tview.Primitive

	queueUpdateDraw func(f func())
}

func (a *testApp) Run() error { return nil }

func (a *testApp) QueueUpdateDraw(f func()) {
	if a.queueUpdateDraw != nil {
		a.queueUpdateDraw(f)
		return
	}
	if f != nil {
		f()
	}
}

func (a *testApp) SetFocus(p tview.Primitive) {
	a.focused = p
}

func (a *testApp) SetRoot(root tview.Primitive, fullscreen bool) {
	a.root = root
	_ = fullscreen
}

func (a *testApp) Stop() {}

func (a *testApp) EnableMouse(_ bool) {}
