package app

import (
	"github.com/dgravesa/go-parallel/parallel"

	"gonoise/ports"
)

// Window is an axis-aligned sampling region in noise-space coordinates.
// Samples are taken at texel centers: column i of W maps to
// X0 + (i+0.5)/W * width.
type Window struct {
	X0, Y0 float64
	X1, Y1 float64
}

// SampleGrid evaluates field over a w x h grid spanning the window, fanning
// rows out across the available cores. The result is row-major, w*h long,
// and deterministic regardless of worker scheduling because each output slot
// depends only on its own coordinate.
func SampleGrid(field ports.Field2, win Window, w, h int) []float64 {
	out := make([]float64, w*h)
	if w <= 0 || h <= 0 {
		return out
	}

	dx := (win.X1 - win.X0) / float64(w)
	dy := (win.Y1 - win.Y0) / float64(h)

	parallel.For(h, func(row, _ int) {
		y := win.Y0 + (float64(row)+0.5)*dy
		base := row * w
		for col := 0; col < w; col++ {
			x := win.X0 + (float64(col)+0.5)*dx
			out[base+col] = field.Eval2(x, y)
		}
	})

	return out
}
