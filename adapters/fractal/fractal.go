// Package fractal composes any base field generator into multi-octave
// fields: standard fBm, turbulence, ridged fBm and domain warping. It is
// generic over the ports.Field2/Field3 contracts and carries no state of its
// own beyond the immutable composition parameters.
package fractal

import (
	"math"

	"gonoise/ports"
)

// Params are the octave-composition parameters shared by the 2D and 3D
// engines. Validation happens upstream in the configuration layer; octaves
// is at least 1 by the time a Fractal is built, so the amplitude
// normalization can never divide by zero.
type Params struct {
	Frequency   float64 // base frequency applied at the first octave
	Octaves     int
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency growth per octave
	Ridge       bool    // fold each octave through (1-|s|)^2
	Turbulence  bool    // fold each octave through |s|

	// AngleStep rotates a steerable base's flow direction per octave: octave
	// i evaluates at i*AngleStep on top of the base orientation. Ignored for
	// bases that do not implement ports.Steerable2.
	AngleStep float64
}

// fold applies the per-octave shaping rule.
func (p Params) fold(s float64) float64 {
	switch {
	case p.Ridge:
		a := 1 - math.Abs(s)
		return a * a
	case p.Turbulence:
		return math.Abs(s)
	default:
		return s
	}
}

// Fractal2 sums octaves of a 2D base field. The running amplitude sum
// normalizes the result, so the output range is the folded base range
// regardless of octave count: [-1, 1] for standard fBm over gradient noise,
// [0, 1] for ridge and turbulence.
type Fractal2 struct {
	Base ports.Field2
	Params
}

// Eval2 implements ports.Field2.
func (f *Fractal2) Eval2(x, y float64) float64 {
	total := 0.0
	frequency := f.Frequency
	amplitude := 1.0
	maxAmplitude := 0.0

	var steer ports.Steerable2
	if f.AngleStep != 0 {
		steer, _ = f.Base.(ports.Steerable2)
	}

	for i := 0; i < f.Octaves; i++ {
		var s float64
		if steer != nil {
			s = steer.Eval2Rotated(x*frequency, y*frequency, float64(i)*f.AngleStep)
		} else {
			s = f.Base.Eval2(x*frequency, y*frequency)
		}
		s = f.fold(s)
		total += s * amplitude
		maxAmplitude += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}

	return total / maxAmplitude
}

// Fractal3 sums octaves of a 3D base field.
type Fractal3 struct {
	Base ports.Field3
	Params
}

// Eval3 implements ports.Field3.
func (f *Fractal3) Eval3(x, y, z float64) float64 {
	total := 0.0
	frequency := f.Frequency
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < f.Octaves; i++ {
		s := f.fold(f.Base.Eval3(x*frequency, y*frequency, z*frequency))
		total += s * amplitude
		maxAmplitude += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}

	return total / maxAmplitude
}

// Channel offsets decorrelating the warp displacement axes. One noise field
// serves every axis; each axis samples it at a fixed translation.
const (
	warpOffsetX1 = 5.2
	warpOffsetY1 = 1.3
	warpOffsetX2 = 9.7
	warpOffsetY2 = 2.8
	warpOffsetZ2 = 4.3
)

// Warp2 displaces query coordinates by an independent noise field before
// sampling the target - domain warping. Passes applies the displacement
// repeatedly, feeding each warped coordinate into the next pass.
type Warp2 struct {
	Target   ports.Field2 // field sampled after displacement
	Channel  ports.Field2 // displacement source, one per-axis translation apart
	Strength float64
	Passes   int
}

// Eval2 implements ports.Field2.
func (w *Warp2) Eval2(x, y float64) float64 {
	passes := w.Passes
	if passes < 1 {
		passes = 1
	}
	for p := 0; p < passes; p++ {
		qx := w.Channel.Eval2(x, y)
		qy := w.Channel.Eval2(x+warpOffsetX1, y+warpOffsetY1)
		x += w.Strength * qx
		y += w.Strength * qy
	}
	return w.Target.Eval2(x, y)
}

// Warp3 is the three-dimensional counterpart of Warp2.
type Warp3 struct {
	Target   ports.Field3
	Channel  ports.Field3
	Strength float64
	Passes   int
}

// Eval3 implements ports.Field3.
func (w *Warp3) Eval3(x, y, z float64) float64 {
	passes := w.Passes
	if passes < 1 {
		passes = 1
	}
	for p := 0; p < passes; p++ {
		qx := w.Channel.Eval3(x, y, z)
		qy := w.Channel.Eval3(x+warpOffsetX1, y+warpOffsetY1, z)
		qz := w.Channel.Eval3(x+warpOffsetX2, y+warpOffsetY2, z+warpOffsetZ2)
		x += w.Strength * qx
		y += w.Strength * qy
		z += w.Strength * qz
	}
	return w.Target.Eval3(x, y, z)
}
