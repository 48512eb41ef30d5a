// Package profiling writes CPU and memory profiles for debugging slow
// directory scans.
package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile

	memProfilingInterval = 30 * time.Second
)

// DoCPUProfiling starts CPU profiling into the given file and returns the
// function that stops it. The returned function is never nil.
func DoCPUProfiling(fileName string) (stop func()) {
	f, err := osCreate(fileName)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling periodically rewrites a heap profile to the given file and
// returns a function that writes one on demand.
func DoMemProfiling(fileName string) (write func()) {
	var mu sync.Mutex
	write = func() {
		mu.Lock()
		defer mu.Unlock()
		f, err := osCreate(fileName)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(io.Writer(f)); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			write()
		}
	}()
	return write
}
