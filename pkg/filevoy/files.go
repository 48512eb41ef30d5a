package filevoy

import (
	"github.com/filevoy/filevoy/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// filesPanel lists the entries of the current directory in a table backed by
// FileRows.
type filesPanel struct {
	nav   *Navigator
	table *tview.Table
	rows  *FileRows
}

func newFilesPanel(nav *Navigator) *filesPanel {
	p := &filesPanel{
		nav:   nav,
		table: tview.NewTable(),
	}
	p.table.SetBorder(true)
	p.table.SetSelectable(true, false)
	p.table.SetSelectedFunc(p.selected)
	p.table.SetSelectionChangedFunc(p.selectionChanged)
	p.table.SetInputCapture(p.inputCapture)
	return p
}

func (p *filesPanel) SetRows(rows *FileRows) {
	p.rows = rows
	p.table.SetContent(rows)
	if rows.GetRowCount() > 0 {
		p.table.Select(0, 0)
	}
	p.selectionChanged(0, 0)
}

// CurrentEntry returns the entry under the cursor, or nil when the cursor is
// on the ".." row or the list is empty.
func (p *filesPanel) CurrentEntry() *files.EntryWithDirPath {
	row, _ := p.table.GetSelection()
	if p.rows != nil && !p.rows.HideParent() && row == 0 {
		return nil
	}
	cell := p.table.GetCell(row, 0)
	if cell == nil {
		return nil
	}
	entry, ok := cell.GetReference().(*files.EntryWithDirPath)
	if !ok || entry == nil {
		return nil
	}
	return entry
}

func (p *filesPanel) selectedEntry() *files.EntryWithDirPath {
	row, _ := p.table.GetSelection()
	cell := p.table.GetCell(row, 0)
	if cell == nil {
		return nil
	}
	entry, _ := cell.GetReference().(*files.EntryWithDirPath)
	return entry
}

func (p *filesPanel) selected(row, column int) {
	entry := p.selectedEntry()
	if entry == nil {
		return
	}
	if p.rows != nil && p.rows.isDirEntry(entry) {
		p.nav.goDir(entry.FullName())
		return
	}
	p.nav.openEntry(entry)
}

func (p *filesPanel) selectionChanged(row, column int) {
	p.nav.previewer.SetEntry(p.selectedEntry())
}

func (p *filesPanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		p.nav.setAppFocus(p.nav.tree)
		return nil
	case tcell.KeyRight:
		p.nav.setAppFocus(p.nav.right)
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.nav.goUp()
		return nil
	}
	return event
}
