package filevoy

import "github.com/rivo/tview"

// container is a column that can swap its inner primitive, e.g. the right
// column switching between the previewer and the new-entry panel.
type container struct {
	*tview.Flex
	inner tview.Primitive
	nav   *Navigator
}

func newContainer(nav *Navigator) *container {
	c := &container{
		Flex: tview.NewFlex(),
		nav:  nav,
	}
	c.SetFocusFunc(func() {
		if c.inner != nil {
			c.nav.setAppFocus(c.inner)
		}
	})
	return c
}

func (c *container) SetContent(p tview.Primitive) {
	c.inner = p
	c.Clear()
	c.AddItem(p, 0, 1, false)
}
