package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	logFile, err := setupLogging("")
	if err != nil || logFile != nil {
		t.Errorf("Expected nil file and error for empty path, got %v, %v", logFile, err)
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_WritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	logPath := filepath.Join(t.TempDir(), "logs", "ascii3d.log")
	logFile, err := setupLogging(logPath)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "ascii3d.log")
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile, err := setupLogging(logPath)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected rotated and fresh log files, got %d entries", len(entries))
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log below %d bytes, got %d", maxLogSize, info.Size())
	}
}
