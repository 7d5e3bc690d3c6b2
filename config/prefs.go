package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/toml"
)

// ShapeKey is the persisted preference key, stored as [ascii] shape
const ShapeKey = "ascii.shape"

const prefsFileName = "prefs.toml"

type prefsFile struct {
	Ascii struct {
		Shape string `toml:"shape"`
	} `toml:"ascii"`
}

// Prefs persists the selected shape
type Prefs struct {
	path string
}

// DefaultPrefsPath returns <user config dir>/ascii3d/prefs.toml
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "ascii3d", prefsFileName), nil
}

// NewPrefs stores preferences at path
func NewPrefs(path string) *Prefs {
	return &Prefs{path: path}
}

// LoadShape returns the stored shape and whether a valid one was found
// Absent, unreadable or invalid preferences yield the default shape and false
func (p *Prefs) LoadShape() (shape.Kind, bool) {
	if p == nil || p.path == "" {
		return shape.Default, false
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("prefs: read %s: %v", p.path, err)
		}
		return shape.Default, false
	}

	var pf prefsFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		log.Printf("prefs: parse %s: %v", p.path, err)
		return shape.Default, false
	}

	k, ok := shape.ParseKind(pf.Ascii.Shape)
	if !ok && pf.Ascii.Shape != "" {
		log.Printf("prefs: unknown %s %q, using %s", ShapeKey, pf.Ascii.Shape, k)
	}
	return k, ok
}

// SaveShape writes the shape through a temp file and rename
func (p *Prefs) SaveShape(k shape.Kind) error {
	if p == nil || p.path == "" {
		return nil
	}
	if !k.Valid() {
		k = shape.Default
	}

	var pf prefsFile
	pf.Ascii.Shape = k.String()
	data, err := toml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("failed to encode prefs: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, prefsFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("failed to replace prefs: %w", err)
	}
	return nil
}
