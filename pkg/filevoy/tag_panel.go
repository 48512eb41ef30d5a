package filevoy

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TagPanel edits the tags of the selected entry. Tags are entered as a
// space separated list; an empty list removes the entry from the tag store.
type TagPanel struct {
	*tview.Flex
	input    *tview.InputField
	nav      *Navigator
	fullPath string
}

func NewTagPanel(nav *Navigator) *TagPanel {
	p := &TagPanel{
		nav: nav,
	}
	p.input = tview.NewInputField().
		SetLabel("Tags: ").
		SetFieldWidth(0)
	p.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			p.save()
		case tcell.KeyEscape:
			p.Hide()
		}
	})

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 1, true)
	p.SetBorder(true)
	p.SetTitle(" Tags ")
	return p
}

func (p *TagPanel) Show() {
	if p.nav.tags == nil {
		p.nav.ShowErrorText("Tags are not available")
		return
	}
	entry := p.nav.filesPanel.CurrentEntry()
	if entry == nil {
		p.nav.ShowErrorText("Nothing selected to tag")
		return
	}
	p.fullPath = entry.FullName()
	p.input.SetText(strings.Join(p.nav.tags.Get(p.fullPath), " "))
	p.nav.right.SetContent(p)
	p.nav.setAppFocus(p.input)
}

func (p *TagPanel) Hide() {
	p.nav.right.SetContent(p.nav.previewer)
	p.nav.setAppFocus(p.nav.filesPanel.table)
}

func (p *TagPanel) save() {
	tags := strings.Fields(p.input.GetText())
	if err := p.nav.tags.Set(p.fullPath, tags); err != nil {
		p.nav.ShowError(err)
		return
	}
	p.Hide()
	p.nav.Refresh()
}
