package filevoy

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/filevoy/filevoy/pkg/filevoy/navigator"
	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/filevoy/filevoy/pkg/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Navigator is the whole browser screen: address and search bar on top, the
// directory tree, files table and preview columns in the middle, the menu bar
// at the bottom.
type Navigator struct {
	*tview.Flex
	app   navigator.App
	store files.Store
	tags  *tags.Manager

	currentDir string
	filter     Filter
	history    *history
	clipboard  clipboard

	topBar     *topBar
	left       *container
	tree       *Tree
	favorites  *favoritesPanel
	filesPanel *filesPanel
	right      *container
	previewer  *previewer
	newPanel   *NewPanel
	tagPanel   *TagPanel
	bottom     *bottom
}

type navigatorOptions struct {
	tags *tags.Manager
}

type NavigatorOption func(o *navigatorOptions)

func WithTagManager(m *tags.Manager) NavigatorOption {
	return func(o *navigatorOptions) {
		o.tags = m
	}
}

func NewNavigator(app navigator.App, store files.Store, startDir string, options ...NavigatorOption) *Navigator {
	var o navigatorOptions
	for _, option := range options {
		option(&o)
	}

	nav := &Navigator{
		app:     app,
		store:   store,
		tags:    o.tags,
		history: newHistory(),
	}

	nav.topBar = newTopBar(nav)
	nav.tree = NewTree(nav)
	nav.favorites = newFavoritesPanel(nav)
	nav.filesPanel = newFilesPanel(nav)
	nav.previewer = newPreviewer(nav)
	nav.newPanel = NewNewPanel(nav)
	nav.tagPanel = NewTagPanel(nav)
	nav.bottom = newBottom(nav)

	nav.left = newContainer(nav)
	nav.left.SetContent(nav.tree)
	nav.right = newContainer(nav)
	nav.right.SetContent(nav.previewer)

	columns := tview.NewFlex().
		AddItem(nav.left, 0, 6, true).
		AddItem(nav.filesPanel.table, 0, 10, true).
		AddItem(nav.right, 0, 8, false)

	nav.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nav.topBar, 1, 0, false).
		AddItem(columns, 0, 1, true).
		AddItem(nav.bottom, 1, 0, false)

	nav.SetInputCapture(nav.inputCapture)
	nav.applyFocusStyle(nav.tree)
	nav.applyFocusStyle(nav.filesPanel.table)
	nav.applyFocusStyle(nav.previewer)

	if startDir == "" {
		startDir = "~"
	}
	nav.goDir(startDir)
	return nav
}

func (nav *Navigator) SetFocus() {
	nav.setAppFocus(nav.filesPanel.table)
}

func (nav *Navigator) CurrentDir() string {
	return nav.currentDir
}

func (nav *Navigator) setAppFocus(p tview.Primitive) {
	if nav.app != nil {
		nav.app.SetFocus(p)
	}
}

func (nav *Navigator) setAppRoot(p tview.Primitive, fullscreen bool) {
	if nav.app != nil {
		nav.app.SetRoot(p, fullscreen)
	}
}

type borderedPrimitive interface {
	tview.Primitive
	SetBorderColor(color tcell.Color) *tview.Box
	SetFocusFunc(callback func()) *tview.Box
	SetBlurFunc(callback func()) *tview.Box
}

func (nav *Navigator) applyFocusStyle(p borderedPrimitive) {
	p.SetBorderColor(Style.BlurBorderColor)
	p.SetFocusFunc(func() {
		p.SetBorderColor(Style.FocusedBorderColor)
	})
	p.SetBlurFunc(func() {
		p.SetBorderColor(Style.BlurBorderColor)
	})
}

func (nav *Navigator) goDir(dir string) {
	nav.navigateTo(dir, true)
}

// navigateTo rebuilds the tree chain from the filesystem root down to dir and
// shows its listing.
func (nav *Navigator) navigateTo(dir string, addToHistory bool) {
	dir = path.Clean(fsutils.ExpandHome(dir))
	if !strings.HasPrefix(dir, "/") {
		dir = "/" + dir
	}

	t := nav.tree
	t.rootNode.ClearChildren()
	t.rootNode.SetText("/")
	t.rootNode.SetReference(files.NewDirContext(nav.store, "/", nil))

	parentNode := t.rootNode
	nodePath := "/"
	if rel := strings.TrimPrefix(dir, "/"); rel != "" {
		for _, segment := range strings.Split(rel, "/") {
			nodePath = path.Join(nodePath, segment)
			n := tview.NewTreeNode(dirEmoji + segment)
			n.SetReference(files.NewDirContext(nav.store, nodePath, nil))
			parentNode.AddChild(n)
			parentNode = n
		}
	}

	dirContext, _ := parentNode.GetReference().(*files.DirContext)
	nav.showDir(parentNode, dirContext, addToHistory)
	t.SetCurrentNode(parentNode)
}

// showDir lists a directory into the files table and tree node. On error the
// previous location stays current.
func (nav *Navigator) showDir(node *tview.TreeNode, dirContext *files.DirContext, addToHistory bool) {
	if dirContext == nil {
		return
	}
	dirPath := dirContext.Path()
	children, err := nav.store.ReadDir(context.Background(), dirPath)
	if err != nil {
		if node != nil {
			nav.tree.setError(node, err)
		}
		nav.filesPanel.SetRows(NewErrFileRows(dirContext, err))
		nav.ShowError(err)
		return
	}
	dirContext.SetChildren(children)
	if node != nil {
		node.SetColor(tview.Styles.PrimaryTextColor)
		nav.tree.setDirContext(node, dirContext)
	}

	if addToHistory {
		nav.history.Push(dirPath)
	}
	if dirPath != nav.currentDir {
		// a search is scoped to the directory it was typed in
		nav.filter.Search = ""
		nav.topBar.ResetSearch()
	}
	nav.currentDir = dirPath

	rows := NewFileRows(dirContext, nav.tagsFor)
	rows.SetFilter(nav.filter)
	nav.filesPanel.SetRows(rows)
	nav.filesPanel.table.SetTitle(fmt.Sprintf(" %s ", dirPath))
	nav.topBar.SetPath(dirPath)
	nav.bottom.refreshGitStatus(dirPath)
}

// Refresh re-reads the current directory from disk.
func (nav *Navigator) Refresh() {
	nav.navigateTo(nav.currentDir, false)
}

func (nav *Navigator) tagsFor(fullPath string) []string {
	if nav.tags == nil {
		return nil
	}
	return nav.tags.Get(fullPath)
}

func (nav *Navigator) SetSearchFilter(text string) {
	nav.filter.Search = text
	nav.applyFilter()
}

func (nav *Navigator) toggleHidden() {
	nav.filter.ShowHidden = !nav.filter.ShowHidden
	// the tree filters dot-directories while populating, so rebuild it too
	nav.Refresh()
}

func (nav *Navigator) applyFilter() {
	if rows := nav.filesPanel.rows; rows != nil {
		rows.SetFilter(nav.filter)
		nav.filesPanel.table.Select(0, 0)
	}
}

func (nav *Navigator) selectEntryByName(name string) {
	rows := nav.filesPanel.rows
	if rows == nil {
		return
	}
	offset := 0
	if !rows.HideParent() {
		offset = 1
	}
	for i, entry := range rows.VisibleEntries {
		if entry.Name() == name {
			nav.filesPanel.table.Select(i+offset, 0)
			return
		}
	}
}

func (nav *Navigator) showNewPanel() {
	nav.newPanel.Show()
}

func (nav *Navigator) toggleFavorites() {
	if nav.left.inner == nav.favorites {
		nav.hideFavorites()
		return
	}
	nav.favorites.reload()
	nav.left.SetContent(nav.favorites)
	nav.setAppFocus(nav.favorites.list)
}

func (nav *Navigator) hideFavorites() {
	nav.left.SetContent(nav.tree)
	nav.setAppFocus(nav.filesPanel.table)
}

func (nav *Navigator) ShowNotice(text string) {
	if nav.bottom != nil {
		nav.bottom.ShowNotice(text)
	}
}

func (nav *Navigator) ShowErrorText(text string) {
	if nav.bottom != nil {
		nav.bottom.ShowError(text)
	}
}

func (nav *Navigator) ShowError(err error) {
	if err == nil || nav.bottom == nil {
		return
	}
	nav.bottom.ShowError(err.Error())
}

func (nav *Navigator) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if event.Modifiers()&tcell.ModAlt != 0 {
		switch event.Key() {
		case tcell.KeyLeft:
			nav.goBack()
			return nil
		case tcell.KeyRight:
			nav.goForward()
			return nil
		case tcell.KeyUp:
			nav.goUp()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case '~', 'h', 'H':
				nav.goDir("~")
				return nil
			case '/', 'r', 'R':
				nav.goDir("/")
				return nil
			case '.':
				nav.toggleHidden()
				return nil
			}
		}
		return event
	}
	switch event.Key() {
	case tcell.KeyF1:
		nav.showHelp()
		return nil
	case tcell.KeyF3:
		nav.openCurrent()
		return nil
	case tcell.KeyF5:
		nav.copyCurrent()
		return nil
	case tcell.KeyF6:
		nav.cutCurrent()
		return nil
	case tcell.KeyF7:
		nav.showNewPanel()
		return nil
	case tcell.KeyF8:
		nav.confirmDelete()
		return nil
	case tcell.KeyF10:
		osExit(0)
		return nil
	case tcell.KeyCtrlV:
		nav.pasteClipboard()
		return nil
	case tcell.KeyCtrlT:
		nav.tagPanel.Show()
		return nil
	case tcell.KeyCtrlL:
		nav.setAppFocus(nav.topBar.address)
		return nil
	case tcell.KeyCtrlF:
		nav.setAppFocus(nav.topBar.search)
		return nil
	case tcell.KeyCtrlR:
		nav.Refresh()
		return nil
	case tcell.KeyCtrlB:
		nav.toggleFavorites()
		return nil
	case tcell.KeyCtrlD:
		nav.toggleDisabled()
		return nil
	}
	return event
}
