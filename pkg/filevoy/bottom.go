package filevoy

import (
	"fmt"
	"os"
	"strings"

	"github.com/filevoy/filevoy/pkg/gitutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var osExit = os.Exit

// MenuItem is a clickable action in the bottom bar.
type MenuItem struct {
	Title  string
	HotKey string
	Action func()
}

// bottom renders the function key menu, git status of the current directory,
// the clipboard slot and transient notices.
type bottom struct {
	*tview.TextView
	nav       *Navigator
	menuItems []MenuItem
	gitText   string
	notice    string
}

func newBottom(nav *Navigator) *bottom {
	b := &bottom{
		nav: nav,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.menuItems = []MenuItem{
		{Title: "Help", HotKey: "F1", Action: nav.showHelp},
		{Title: "Open", HotKey: "F3", Action: nav.openCurrent},
		{Title: "Copy", HotKey: "F5", Action: nav.copyCurrent},
		{Title: "Move", HotKey: "F6", Action: nav.cutCurrent},
		{Title: "NewFolder", HotKey: "F7", Action: nav.showNewPanel},
		{Title: "Delete", HotKey: "F8", Action: nav.confirmDelete},
		{Title: "Exit", HotKey: "F10", Action: func() { osExit(0) }},
	}
	b.render()
	return b
}

func (b *bottom) render() {
	var sb strings.Builder
	const separator = "┊"
	for i, mi := range b.menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(fmt.Sprintf(`["%s"][yellow]%s[-]%s[""]`, mi.HotKey, mi.HotKey, mi.Title))
	}
	if clip := b.nav.clipboard.String(); clip != "" {
		sb.WriteString(" " + clip)
	}
	if b.gitText != "" {
		sb.WriteString(" " + b.gitText)
	}
	if b.notice != "" {
		sb.WriteString(" " + b.notice)
	}
	b.SetText(sb.String())
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.Highlight()
	for _, mi := range b.menuItems {
		if mi.HotKey == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}

// refreshGitStatus updates the git segment for the given directory.
func (b *bottom) refreshGitStatus(dir string) {
	b.gitText = ""
	if root := gitutils.GetRepositoryRoot(dir); root != "" {
		b.gitText = gitutils.GetGitStatus(root).String()
	}
	b.render()
}

func colorTag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}

func (b *bottom) ShowNotice(text string) {
	b.notice = fmt.Sprintf("[%s]%s[-]", colorTag(Style.NoticeColor), tview.Escape(text))
	b.render()
}

func (b *bottom) ShowError(text string) {
	b.notice = fmt.Sprintf("[%s]%s[-]", colorTag(Style.ErrorColor), tview.Escape(text))
	b.render()
}

func (b *bottom) ClearNotice() {
	b.notice = ""
	b.render()
}
