package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ascii3d/shape"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	p := NewPrefs(path)

	if got, ok := p.LoadShape(); ok || got != shape.Default {
		t.Errorf("Expected default and not found before save, got %v/%v", got, ok)
	}

	for _, k := range shape.Kinds() {
		if err := p.SaveShape(k); err != nil {
			t.Fatalf("SaveShape(%v) failed: %v", k, err)
		}
		if got, ok := p.LoadShape(); !ok || got != k {
			t.Errorf("Expected %v, got %v/%v", k, got, ok)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[ascii]") || !strings.Contains(string(data), `shape = "cube"`) {
		t.Errorf("Unexpected prefs file:\n%s", data)
	}
}

func TestPrefsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown shape", "[ascii]\nshape = \"sphere\"\n"},
		{"wrong type", "[ascii]\nshape = 3\n"},
		{"malformed", "[ascii\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if got, ok := NewPrefs(path).LoadShape(); ok || got != shape.Default {
				t.Errorf("Expected default, got %v", got)
			}
		})
	}
}

func TestPrefsSaveLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	p := NewPrefs(filepath.Join(dir, "prefs.toml"))
	if err := p.SaveShape(shape.Pyramid); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only prefs.toml, got %d entries", len(entries))
	}
}

func TestPrefsEmptyPath(t *testing.T) {
	p := NewPrefs("")
	if err := p.SaveShape(shape.Cube); err != nil {
		t.Errorf("Expected no-op save, got %v", err)
	}
	if got, ok := p.LoadShape(); ok || got != shape.Default {
		t.Errorf("Expected default, got %v", got)
	}
}
