package filevoy

import (
	"fmt"
	"path"
	"strings"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const dirEmoji = "📁"

// Tree shows the directory hierarchy of the current path. Nodes reference
// *files.DirContext values; children are loaded when a node is shown.
type Tree struct {
	*tview.TreeView
	nav           *Navigator
	rootNode      *tview.TreeNode
	searchPattern string
}

func NewTree(nav *Navigator) *Tree {
	tv := tview.NewTreeView()
	t := &Tree{
		nav:      nav,
		TreeView: tv,
	}
	t.SetBorder(true)
	t.rootNode = tview.NewTreeNode("/")
	t.SetRoot(t.rootNode)
	t.SetChangedFunc(t.changed)
	t.SetInputCapture(t.inputCapture)
	return t
}

func (t *Tree) changed(node *tview.TreeNode) {
	if dirContext, ok := node.GetReference().(*files.DirContext); ok {
		t.nav.showDir(node, dirContext, true)
	}
}

func (t *Tree) setError(node *tview.TreeNode, err error) {
	node.ClearChildren()
	node.SetColor(Style.ErrorColor)
	nodePath := getNodePath(node)
	_, name := path.Split(nodePath)
	node.SetText(fmt.Sprintf("%s%s: %v", dirEmoji, name, err))
}

func getNodePath(node *tview.TreeNode) string {
	if node == nil {
		return ""
	}
	dirContext, ok := node.GetReference().(*files.DirContext)
	if !ok || dirContext == nil {
		return ""
	}
	return dirContext.Path()
}

// setDirContext populates a node with its subdirectories (files are shown in
// the files panel only).
func (t *Tree) setDirContext(node *tview.TreeNode, dirContext *files.DirContext) {
	node.ClearChildren()
	for _, child := range dirContext.Children() {
		name := child.Name()
		if strings.HasPrefix(name, ".") && !t.nav.filter.ShowHidden {
			continue
		}
		if !child.IsDir() {
			continue
		}
		childPath := path.Join(dirContext.Path(), name)
		emoji := dirEmoji
		switch strings.ToLower(name) {
		case "music":
			emoji = "🎹"
		case "movies":
			emoji = "📺"
		case "pictures":
			emoji = "🖼️"
		case "desktop":
			emoji = "🖥️"
		case "documents":
			emoji = "🗃"
		case "public":
			emoji = "📢"
		case "bin", "sbin":
			emoji = "🚀"
		case "private":
			emoji = "🔒"
		}
		n := tview.NewTreeNode(emoji + name)
		n.SetReference(files.NewDirContext(dirContext.Store(), childPath, nil))
		node.AddChild(n)
	}
}

func (t *Tree) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		t.nav.setAppFocus(t.nav.filesPanel.table)
		return nil
	case tcell.KeyLeft:
		if nodePath := getNodePath(t.GetCurrentNode()); nodePath != "" {
			t.nav.goDir(path.Dir(nodePath))
			return nil
		}
		return event
	case tcell.KeyEnter:
		if nodePath := getNodePath(t.GetCurrentNode()); nodePath != "" {
			t.nav.goDir(nodePath)
			return nil
		}
		return event
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.searchPattern != "" {
			t.SetSearch(t.searchPattern[:len(t.searchPattern)-1])
			return nil
		}
		return event
	case tcell.KeyEscape:
		t.SetSearch("")
		return nil
	case tcell.KeyRune:
		s := string(event.Rune())
		if t.searchPattern == "" && s == " " {
			return event
		}
		t.SetSearch(t.searchPattern + strings.ToLower(s))
		return nil
	default:
		return event
	}
}
