package core

import (
	"os"
	"sync/atomic"
	"testing"
)

func TestGoRecoversAndCleansUp(t *testing.T) {
	var cleaned atomic.Bool
	codes := make(chan int, 1)

	exit = func(code int) { codes <- code }
	defer func() { exit = os.Exit }()
	SetCrashCleanup(func() { cleaned.Store(true) })

	Go(func() { panic("boom") })

	if code := <-codes; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !cleaned.Load() {
		t.Error("Expected cleanup to run before exit")
	}
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected nil recover value to be ignored")
	}
}
