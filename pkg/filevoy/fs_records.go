package filevoy

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/filevoy/filevoy/pkg/files"
	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*FileRows)(nil)

// FileRows feeds the files table from a directory context. Row 0 is the
// parent (..) entry unless the directory is the filesystem root.
type FileRows struct {
	tview.TableContentReadOnly
	store          files.Store
	Dir            *files.DirContext
	AllEntries     []*files.EntryWithDirPath
	VisibleEntries []*files.EntryWithDirPath
	Err            error
	filter         Filter

	// tagsFor returns user tags for a full path; may be nil.
	tagsFor func(fullPath string) []string
}

func NewFileRows(dir *files.DirContext, tagsFor func(fullPath string) []string) *FileRows {
	entries := dir.Entries()
	r := &FileRows{
		store:      dir.Store(),
		Dir:        dir,
		AllEntries: entries,
		tagsFor:    tagsFor,
	}
	r.applyFilter()
	return r
}

func NewErrFileRows(dir *files.DirContext, err error) *FileRows {
	return &FileRows{
		store: dir.Store(),
		Dir:   dir,
		Err:   err,
	}
}

func (r *FileRows) HideParent() bool {
	return r.Dir.Path() == "/"
}

func (r *FileRows) SetFilter(filter Filter) {
	r.filter = filter
	r.applyFilter()
}

func (r *FileRows) applyFilter() {
	r.VisibleEntries = make([]*files.EntryWithDirPath, 0, len(r.AllEntries))
	for _, entry := range r.AllEntries {
		var entryTags []string
		if r.tagsFor != nil {
			entryTags = r.tagsFor(entry.FullName())
		}
		if r.filter.IsVisible(entry, entryTags) {
			r.VisibleEntries = append(r.VisibleEntries, entry)
		}
	}
}

func (r *FileRows) GetRowCount() int {
	count := len(r.VisibleEntries)
	if count == 0 {
		count = 1 // "No entries" or error row
	}
	if !r.HideParent() {
		count++
	}
	return count
}

func (r *FileRows) GetColumnCount() int {
	return 3
}

const (
	nameColIndex     = 0
	sizeColIndex     = 1
	modifiedColIndex = 2
)

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if !r.HideParent() && row == 0 {
		return r.getParentRow(col)
	}
	if r.Err != nil {
		if col == nameColIndex {
			cell := tview.NewTableCell(" " + r.Err.Error())
			cell.SetTextColor(Style.ErrorColor)
			return cell
		}
		return nil
	}
	i := row
	if !r.HideParent() {
		i--
	}
	if i < 0 || i > len(r.VisibleEntries) {
		return nil
	}
	if len(r.VisibleEntries) == 0 {
		if col == nameColIndex {
			cell := tview.NewTableCell("[::i]No entries[::-]")
			cell.SetTextColor(tcell.ColorGray)
			return cell
		}
		return nil
	}
	if i == len(r.VisibleEntries) {
		return nil
	}

	entry := r.VisibleEntries[i]
	name := entry.Name()

	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		displayName := enabledName(name)
		if r.isDirEntry(entry) {
			displayName = dirEmoji + displayName
		} else {
			displayName = "📄" + displayName
		}
		if r.tagsFor != nil {
			if tags := r.tagsFor(entry.FullName()); len(tags) > 0 {
				displayName += " [darkcyan]#" + strings.Join(tags, " #") + "[-]"
			}
		}
		cell = tview.NewTableCell(displayName)
		cell.SetExpansion(1)
	case sizeColIndex:
		var sizeText string
		if !entry.IsDir() {
			if fi, err := entry.Info(); err == nil && fi != nil {
				sizeText = fsutils.FormatSize(fi.Size())
			}
		}
		cell = tview.NewTableCell(sizeText)
		cell.SetAlign(tview.AlignRight)
	case modifiedColIndex:
		var s string
		if fi, err := entry.Info(); err == nil && fi != nil {
			modTime := fi.ModTime()
			if modTime.After(time.Now().Add(-24 * time.Hour)) {
				s = modTime.Format("15:04:05")
			} else {
				s = modTime.Format("2006-01-02")
			}
		}
		cell = tview.NewTableCell(s)
		cell.SetAlign(tview.AlignRight)
	default:
		return nil
	}
	if isDisabledName(name) {
		cell.SetTextColor(Style.DisabledColor)
	} else {
		cell.SetTextColor(FileNameColor(name))
	}
	cell.SetReference(entry)
	return cell
}

// isDirEntry resolves symlinks so a link to a directory navigates like one.
func (r *FileRows) isDirEntry(entry *files.EntryWithDirPath) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	if r.store == nil || r.store.RootURL().Scheme != "file" {
		return false
	}
	info, err := os.Stat(entry.FullName()) // entry.Info() would describe the link itself
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (r *FileRows) getParentRow(col int) *tview.TableCell {
	if col != nameColIndex {
		return tview.NewTableCell("")
	}
	cell := tview.NewTableCell("..")
	cell.SetExpansion(1)

	parentDir := path.Dir(r.Dir.Path())
	if parentDir != "/" {
		parentDir = strings.TrimSuffix(parentDir, "/")
	}
	grandParent, parentName := path.Split(parentDir)
	if grandParent == "" {
		grandParent = "/"
	}
	// parentName is empty when the parent is the filesystem root; the entry
	// then resolves to "/" via its Dir.
	parentEntry := files.NewDirEntry(parentName, true)
	return cell.SetReference(files.NewEntryWithDirPath(parentEntry, path.Clean(grandParent)))
}
