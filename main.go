package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/filevoy/filevoy/pkg/filevoy"
	"github.com/filevoy/filevoy/pkg/fsutils"
	"github.com/filevoy/filevoy/pkg/profiling"
	"github.com/rivo/tview"
)

var (
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit

func main() {
	flag.Parse()

	startDir, err := resolveStartDir(flag.Args())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(2)
		return
	}

	if *pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(*pprofAddr, nil); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(*memProfile)
		defer writeMemProfile()
	}

	run(newApp(startDir))
}

// resolveStartDir validates the optional positional argument. With no
// argument the browser starts in the user home.
func resolveStartDir(args []string) (string, error) {
	if len(args) == 0 {
		return "~", nil
	}
	dir := fsutils.ExpandHome(args[0])
	if ok, err := fsutils.DirExists(dir); err != nil {
		return "", fmt.Errorf("cannot open %s: %w", args[0], err)
	} else if !ok {
		return "", fmt.Errorf("not a folder: %s", args[0])
	}
	return dir, nil
}

var setupApp = filevoy.SetupApp

var newApp = func(startDir string) *tview.Application {
	app := tview.NewApplication()
	setupApp(app, startDir)
	return app
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
