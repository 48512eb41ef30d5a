package filevoy

import (
	"path"
	"strings"

	"github.com/rivo/tview"
)

// SetSearch highlights nodes whose name contains the given pattern and moves
// the selection to the first match.
func (t *Tree) SetSearch(pattern string) {
	t.searchPattern = pattern
	var firstMatch *tview.TreeNode
	t.highlightTreeNodes(t.rootNode, pattern, &firstMatch)
	if firstMatch != nil {
		t.SetCurrentNode(firstMatch)
	}
}

func (t *Tree) highlightTreeNodes(node *tview.TreeNode, pattern string, firstMatch **tview.TreeNode) {
	nodePath := getNodePath(node)
	_, name := path.Split(nodePath)
	if name == "" {
		name = "/"
	}
	if pattern != "" && strings.Contains(strings.ToLower(name), pattern) {
		i := strings.Index(strings.ToLower(name), pattern)
		highlighted := name[:i] + "[black:lightgreen]" + name[i:i+len(pattern)] + "[-:-]" + name[i+len(pattern):]
		node.SetText(dirEmoji + highlighted)
		if *firstMatch == nil {
			*firstMatch = node
		}
	} else {
		node.SetText(dirEmoji + name)
	}
	for _, child := range node.GetChildren() {
		t.highlightTreeNodes(child, pattern, firstMatch)
	}
}
