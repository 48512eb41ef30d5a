package filevoy

import "path"

// history keeps visited directories for back/forward navigation. Pushing
// while not at the tail drops the forward entries, pushing the current
// location again is a no-op.
type history struct {
	entries []string
	index   int
}

func newHistory() *history {
	return &history{index: -1}
}

func (h *history) Current() string {
	if h.index < 0 || h.index >= len(h.entries) {
		return ""
	}
	return h.entries[h.index]
}

func (h *history) Push(dir string) {
	if h.Current() == dir {
		return
	}
	h.entries = append(h.entries[:h.index+1], dir)
	h.index = len(h.entries) - 1
}

func (h *history) Back() (string, bool) {
	if h.index <= 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

func (h *history) Forward() (string, bool) {
	if h.index < 0 || h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

func (nav *Navigator) goBack() {
	if dir, ok := nav.history.Back(); ok {
		nav.navigateTo(dir, false)
	}
}

func (nav *Navigator) goForward() {
	if dir, ok := nav.history.Forward(); ok {
		nav.navigateTo(dir, false)
	}
}

func (nav *Navigator) goUp() {
	current := nav.CurrentDir()
	if current == "" || current == "/" {
		return
	}
	from := path.Base(current)
	nav.goDir(path.Dir(current))
	nav.selectEntryByName(from)
}
