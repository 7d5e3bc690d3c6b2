package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/ascii3d/config"
	"github.com/lixenwraith/ascii3d/engine"
	"github.com/lixenwraith/ascii3d/shape"
)

// printFrames writes n frames separated by blank lines
// Reduced motion writes the single static frame regardless of n
func printFrames(w io.Writer, cfg config.Config, k shape.Kind, n int) error {
	bw := bufio.NewWriter(w)
	cols, rows := cfg.View.Cols, cfg.View.Rows

	if cfg.Motion.ReducedMotion {
		fr := engine.RenderOnce(k, cols, rows, shape.StaticAngles(k))
		if _, err := fmt.Fprintln(bw, fr.Text); err != nil {
			return err
		}
		return bw.Flush()
	}

	var at shape.Angles
	for i := 0; i < n; i++ {
		at = engine.Advance(at, cfg.Motion.Speed)
		fr := engine.RenderOnce(k, cols, rows, at)
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, fr.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}
