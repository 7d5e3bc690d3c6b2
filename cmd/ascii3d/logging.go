package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// maxLogSize triggers rotation of an existing log file on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging directs the standard logger to path, or discards it when path is empty
// An oversized existing file is renamed with a timestamp suffix first
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("failed to rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
