package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/ascii3d/config"
	"github.com/lixenwraith/ascii3d/shape"
)

func TestPrintFrames(t *testing.T) {
	cfg := config.Default()
	cfg.View.Cols, cfg.View.Rows = 30, 10

	var buf bytes.Buffer
	if err := printFrames(&buf, cfg, shape.Donut, 3); err != nil {
		t.Fatalf("printFrames failed: %v", err)
	}

	blocks := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(blocks))
	}
	for i, b := range blocks {
		lines := strings.Split(b, "\n")
		if len(lines) != 10 {
			t.Errorf("Frame %d: expected 10 lines, got %d", i, len(lines))
		}
		for _, l := range lines {
			if len([]rune(l)) != 30 {
				t.Errorf("Frame %d: expected 30 columns, got %d", i, len([]rune(l)))
			}
		}
	}
	if blocks[0] == blocks[2] {
		t.Error("Expected frames to differ as the shape rotates")
	}
}

func TestPrintFramesReducedMotion(t *testing.T) {
	cfg := config.Default()
	cfg.Motion.ReducedMotion = true

	var first, second bytes.Buffer
	if err := printFrames(&first, cfg, shape.Donut, 5); err != nil {
		t.Fatal(err)
	}
	if err := printFrames(&second, cfg, shape.Donut, 1); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(first.String(), "\n\n") {
		t.Error("Expected a single frame under reduced motion")
	}
	if first.String() != second.String() {
		t.Error("Expected the static frame to be deterministic")
	}
}
