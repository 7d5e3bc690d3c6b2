package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the host surface before the trace is printed
var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup registers fn to run once before a crash report, nil clears it
// Typically the terminal Fini so the trace is readable
func SetCrashCleanup(fn func()) {
	if fn == nil {
		crashCleanup.Store(nil)
		return
	}
	crashCleanup.Store(&fn)
}

// exit is swapped in tests
var exit = os.Exit

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashCleanup.Swap(nil); fn != nil {
		(*fn)()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
