package filevoy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/filevoy/filevoy/pkg/chroma2tcell"
	"github.com/filevoy/filevoy/pkg/files"
	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const previewMaxBytes = 64 * 1024

var osOpenImage = os.Open

// previewer renders the right column: syntax highlighted text for files, a
// summary for directories and metadata for images.
type previewer struct {
	*tview.TextView
	nav *Navigator
}

func newPreviewer(nav *Navigator) *previewer {
	p := &previewer{
		nav: nav,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
	}
	p.SetBorder(true)
	p.SetTitle(" Preview ")
	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft {
			nav.setAppFocus(nav.filesPanel.table)
			return nil
		}
		return event
	})
	return p
}

func (p *previewer) SetErr(err error) {
	p.Clear()
	p.SetText(err.Error())
	p.SetTextColor(tcell.ColorRed)
}

func (p *previewer) SetContent(text string) {
	p.Clear()
	p.SetText(text)
	p.SetTextColor(tcell.ColorWhiteSmoke)
}

func (p *previewer) SetEntry(entry *files.EntryWithDirPath) {
	if entry == nil {
		p.SetContent("")
		return
	}
	fullName := entry.FullName()
	if entry.IsDir() {
		p.previewDir(fullName)
		return
	}
	p.previewFile(entry.Name(), fullName)
}

func (p *previewer) previewDir(fullName string) {
	entries, err := os.ReadDir(fullName)
	if err != nil {
		p.SetErr(err)
		return
	}
	var dirs, fileCount int
	var totalSize int64
	for _, e := range entries {
		if e.IsDir() {
			dirs++
			continue
		}
		fileCount++
		if fi, err := e.Info(); err == nil {
			totalSize += fi.Size()
		}
	}
	printer := message.NewPrinter(language.English)
	var sb strings.Builder
	sb.WriteString(printer.Sprintf("Folders: %d\n", dirs))
	sb.WriteString(printer.Sprintf("Files: %d\n", fileCount))
	sb.WriteString(printer.Sprintf("Total size: %d bytes\n", totalSize))
	p.SetContent(sb.String())
}

func (p *previewer) previewFile(name, fullName string) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		p.previewImage(fullName)
		return
	}

	data, err := fsutils.ReadFileData(fullName, previewMaxBytes)
	if err != nil {
		p.SetErr(err)
		return
	}
	if ext == ".json" {
		if str, err := prettyJSON(string(data)); err == nil {
			data = []byte(str)
		}
	}
	lexer := lexers.Match(name)
	if lexer == nil {
		p.SetContent(tview.Escape(string(data)))
		return
	}
	colorized, err := chroma2tcell.Colorize(string(data), "dracula", lexer)
	if err != nil {
		p.SetErr(fmt.Errorf("failed to format file: %w", err))
		return
	}
	p.Clear()
	p.SetText(colorized)
	p.SetWrap(true)
}

func (p *previewer) previewImage(fullName string) {
	f, err := osOpenImage(fullName)
	if err != nil {
		p.SetErr(err)
		return
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		p.SetErr(err)
		return
	}
	p.SetContent(fmt.Sprintf("Format: %s\nWidth: %d\nHeight: %d\n", format, cfg.Width, cfg.Height))
}

func prettyJSON(input string) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(input), "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
