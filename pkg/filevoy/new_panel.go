package filevoy

import (
	"context"
	"errors"
	"path"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewPanel prompts for a name and creates a folder or an empty file in the
// current directory.
type NewPanel struct {
	*tview.Flex
	input         *tview.InputField
	createDirBtn  *tview.Button
	createFileBtn *tview.Button
	nav           *Navigator
}

func NewNewPanel(nav *Navigator) *NewPanel {
	p := &NewPanel{
		nav: nav,
	}

	p.input = tview.NewInputField().
		SetLabel("Name: ").
		SetFieldWidth(0)

	p.createDirBtn = tview.NewButton("Create folder").SetSelectedFunc(p.createDir)
	p.createFileBtn = tview.NewButton("Create file").SetSelectedFunc(p.createFile)

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.input, 1, 1, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.createDirBtn, 1, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(p.createFileBtn, 1, 1, false)
	p.SetBorder(true)
	p.SetTitle(" New ")

	p.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			p.createDir()
		case tcell.KeyEscape:
			p.Hide()
		}
	})

	return p
}

func (p *NewPanel) Show() {
	p.input.SetText("")
	p.nav.right.SetContent(p)
	p.nav.setAppFocus(p.input)
}

func (p *NewPanel) Hide() {
	p.nav.right.SetContent(p.nav.previewer)
	p.nav.setAppFocus(p.nav.filesPanel.table)
}

func (p *NewPanel) createDir() {
	p.create(p.nav.store.CreateDir, "Folder already exists: ")
}

func (p *NewPanel) createFile() {
	p.create(p.nav.store.CreateFile, "File already exists: ")
}

func (p *NewPanel) create(op func(ctx context.Context, name string) error, collisionPrefix string) {
	name := p.input.GetText()
	if name == "" {
		return
	}
	currentDir := p.nav.CurrentDir()
	if currentDir == "" {
		return
	}
	fullPath := path.Join(currentDir, name)

	if err := op(context.Background(), fullPath); err != nil {
		if errors.Is(err, files.ErrNameCollision) {
			p.nav.ShowErrorText(collisionPrefix + name)
		} else {
			p.nav.ShowError(err)
		}
		return
	}

	p.Hide()
	p.nav.Refresh()
	p.nav.selectEntryByName(name)
}
