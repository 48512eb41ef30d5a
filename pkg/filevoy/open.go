package filevoy

import (
	"os/exec"
	"runtime"

	"github.com/filevoy/filevoy/pkg/files"
)

var (
	execCommand  = exec.Command
	execLookPath = exec.LookPath
	goos         = runtime.GOOS
)

// openWithDefaultHandler asks the OS to open the file with whatever is
// registered for its type.
func openWithDefaultHandler(fullName string) error {
	var name string
	var args []string
	switch goos {
	case "darwin":
		name = "open"
		args = []string{fullName}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", fullName}
	default:
		name = "xdg-open"
		args = []string{fullName}
	}
	if _, err := execLookPath(name); err != nil {
		return files.ErrNoDefaultHandler
	}
	cmd := execCommand(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func (nav *Navigator) openCurrent() {
	entry := nav.filesPanel.CurrentEntry()
	if entry == nil {
		return
	}
	nav.openEntry(entry)
}

func (nav *Navigator) openEntry(entry *files.EntryWithDirPath) {
	if entry == nil {
		return
	}
	if nav.filesPanel.rows != nil && nav.filesPanel.rows.isDirEntry(entry) {
		nav.goDir(entry.FullName())
		return
	}
	if err := openWithDefaultHandler(entry.FullName()); err != nil {
		nav.ShowError(err)
	}
}
