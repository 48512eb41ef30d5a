package filevoy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/filevoy/filevoy/pkg/files"
)

type clipboardMode int

const (
	clipboardEmpty clipboardMode = iota
	clipboardCopy
	clipboardCut
)

// clipboard is a single slot holding a path marked for copy or move.
type clipboard struct {
	mode clipboardMode
	path string
}

func (c *clipboard) Set(mode clipboardMode, fullPath string) {
	c.mode = mode
	c.path = fullPath
}

func (c *clipboard) Clear() {
	c.mode = clipboardEmpty
	c.path = ""
}

func (c *clipboard) IsEmpty() bool {
	return c.mode == clipboardEmpty
}

func (c *clipboard) String() string {
	switch c.mode {
	case clipboardCopy:
		return "[darkcyan]copy:" + c.path + "[-]"
	case clipboardCut:
		return "[darkcyan]move:" + c.path + "[-]"
	default:
		return ""
	}
}

func (nav *Navigator) copyCurrent() {
	entry := nav.filesPanel.CurrentEntry()
	if entry == nil {
		nav.ShowErrorText("Nothing selected to copy")
		return
	}
	nav.clipboard.Set(clipboardCopy, entry.FullName())
	nav.ShowNotice("Copied to clipboard: " + entry.Name())
}

func (nav *Navigator) cutCurrent() {
	entry := nav.filesPanel.CurrentEntry()
	if entry == nil {
		nav.ShowErrorText("Nothing selected to move")
		return
	}
	nav.clipboard.Set(clipboardCut, entry.FullName())
	nav.ShowNotice("Marked for move: " + entry.Name())
}

// pasteClipboard applies the clipboard slot to the current directory. A cut
// becomes a rename, a copy copies recursively. The slot is cleared after a
// successful move and kept after a copy.
func (nav *Navigator) pasteClipboard() {
	if nav.clipboard.IsEmpty() {
		nav.ShowNotice("Clipboard is empty")
		return
	}
	src := nav.clipboard.path
	if _, err := os.Stat(src); err != nil {
		nav.clipboard.Clear()
		nav.ShowErrorText("Clipboard source is gone: " + src)
		return
	}
	dst := path.Join(nav.CurrentDir(), filepath.Base(src))
	if dst == src {
		nav.ShowErrorText("Source and target are the same")
		return
	}

	ctx := context.Background()
	var err error
	switch nav.clipboard.mode {
	case clipboardCut:
		err = nav.store.Rename(ctx, src, dst)
	case clipboardCopy:
		err = nav.store.Copy(ctx, src, dst)
	}
	if err != nil {
		if errors.Is(err, files.ErrNameCollision) {
			nav.ShowErrorText(fmt.Sprintf("Already exists: %s", dst))
		} else {
			nav.ShowError(err)
		}
		return
	}
	if nav.clipboard.mode == clipboardCut {
		nav.clipboard.Clear()
	}
	nav.Refresh()
	nav.selectEntryByName(filepath.Base(dst))
}
