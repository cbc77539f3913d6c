package fractal

import (
	"math"
	"testing"

	"gonoise/adapters/generators"
	"gonoise/domain/noise"
	"gonoise/internal/testkit"
	"gonoise/ports"
)

func perlinFractal(seed int64, octaves int) *Fractal2 {
	return &Fractal2{
		Base: generators.NewPerlin(seed),
		Params: Params{
			Frequency:   1.0,
			Octaves:     octaves,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
	}
}

func TestSingleOctaveMatchesBase(t *testing.T) {
	base := generators.NewPerlin(42)
	f := perlinFractal(42, 1)

	for _, p := range testkit.Coords(200, 40) {
		if got, want := f.Eval2(p.X, p.Y), base.Eval2(p.X, p.Y); got != want {
			t.Fatalf("one octave differs from base at (%v, %v): %v vs %v", p.X, p.Y, got, want)
		}
	}
}

// Reference parameterization: seed 1, 4 octaves, persistence 0.5,
// lacunarity 2.0. Amplitude normalization keeps the sum inside the base
// generator's own range regardless of octave count.
func TestFractalNormalization(t *testing.T) {
	f := &Fractal2{
		Base: generators.NewPerlin(1),
		Params: Params{
			Frequency:   1.0,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
	}

	for _, p := range testkit.Coords(10000, 200) {
		v := f.Eval2(p.X, p.Y)
		if math.IsNaN(v) || v < -1.2 || v > 1.2 {
			t.Fatalf("fBm at (%v, %v) = %v out of range", p.X, p.Y, v)
		}
	}
}

func TestRidgeOutputNonNegative(t *testing.T) {
	f := perlinFractal(42, 3)
	f.Ridge = true

	for _, p := range testkit.Coords(1000, 100) {
		v := f.Eval2(p.X, p.Y)
		if v < 0 || v > 1 {
			t.Fatalf("ridge at (%v, %v) = %v outside [0, 1]", p.X, p.Y, v)
		}
	}
}

func TestTurbulenceOutputNonNegative(t *testing.T) {
	f := perlinFractal(42, 3)
	f.Turbulence = true

	for _, p := range testkit.Coords(1000, 100) {
		v := f.Eval2(p.X, p.Y)
		if v < 0 || v > 1.2 {
			t.Fatalf("turbulence at (%v, %v) = %v out of range", p.X, p.Y, v)
		}
	}
}

// Ridge folds each octave through (1-|s|)^2, so a base value of 0 maps to 1.
func TestRidgeFoldFormula(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 1},
		{1, 0},
		{-1, 0},
		{0.5, 0.25},
		{-0.5, 0.25},
	}
	p := Params{Ridge: true}
	for _, tc := range cases {
		if got := p.fold(tc.in); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("fold(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFrequencyScalesCoordinates(t *testing.T) {
	base := generators.NewPerlin(42)
	f := &Fractal2{
		Base:   base,
		Params: Params{Frequency: 3.0, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0},
	}

	for _, p := range testkit.Coords(200, 20) {
		if got, want := f.Eval2(p.X, p.Y), base.Eval2(p.X*3, p.Y*3); got != want {
			t.Fatalf("frequency scaling broke at (%v, %v)", p.X, p.Y)
		}
	}
}

func anisotropicFractal(angleStep float64, octaves int) *Fractal2 {
	base := generators.NewAnisotropic(generators.NewPerlin(42), noise.AnisotropicParams{
		Anisotropy: 3.0,
		Angle:      0.4,
	})
	return &Fractal2{
		Base: base,
		Params: Params{
			Frequency:   1.0,
			Octaves:     octaves,
			Persistence: 0.5,
			Lacunarity:  2.0,
			AngleStep:   angleStep,
		},
	}
}

// Directional mode: octave i evaluates with the flow turned i*AngleStep, so
// the first octave is untouched and later octaves sweep around.
func TestDirectionalAngleStep(t *testing.T) {
	straight := anisotropicFractal(0, 4)
	stepped := anisotropicFractal(math.Pi/6, 4)

	differ := false
	for _, p := range testkit.Coords(300, 40) {
		vs := straight.Eval2(p.X, p.Y)
		vd := stepped.Eval2(p.X, p.Y)
		if math.IsNaN(vd) || math.Abs(vd) > 1.2 {
			t.Fatalf("directional at (%v, %v) = %v out of range", p.X, p.Y, vd)
		}
		if vs != vd {
			differ = true
		}
	}
	if !differ {
		t.Fatal("angle stepping changed nothing across four octaves")
	}

	// A single octave gets rotation 0*step and must match the unstepped sum.
	one := anisotropicFractal(math.Pi/6, 1)
	plain := anisotropicFractal(0, 1)
	for _, p := range testkit.Coords(200, 40) {
		if got, want := one.Eval2(p.X, p.Y), plain.Eval2(p.X, p.Y); got != want {
			t.Fatalf("first octave picked up a rotation at (%v, %v): %v vs %v", p.X, p.Y, got, want)
		}
	}
}

// Bases without a steerable flow ignore the step entirely.
func TestAngleStepIgnoredForPlainBases(t *testing.T) {
	plain := perlinFractal(42, 3)
	stepped := perlinFractal(42, 3)
	stepped.AngleStep = math.Pi / 4

	for _, p := range testkit.Coords(200, 40) {
		if plain.Eval2(p.X, p.Y) != stepped.Eval2(p.X, p.Y) {
			t.Fatalf("angle step leaked into a non-steerable base at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestWarpDisplacesField(t *testing.T) {
	target := perlinFractal(42, 2)
	warped := &Warp2{
		Target:   target,
		Channel:  target,
		Strength: 0.8,
		Passes:   1,
	}

	differ := false
	for _, p := range testkit.Coords(300, 40) {
		v := warped.Eval2(p.X, p.Y)
		if math.IsNaN(v) {
			t.Fatalf("NaN at (%v, %v)", p.X, p.Y)
		}
		if v != target.Eval2(p.X, p.Y) {
			differ = true
		}
	}
	if !differ {
		t.Fatal("warp left every sample unchanged")
	}
}

func TestWarpDeterministic(t *testing.T) {
	mk := func() ports.Field2 {
		f := perlinFractal(7, 3)
		return &Warp2{Target: f, Channel: f, Strength: 1.2, Passes: 2}
	}
	a, b := mk(), mk()

	for _, p := range testkit.Coords(200, 40) {
		if a.Eval2(p.X, p.Y) != b.Eval2(p.X, p.Y) {
			t.Fatalf("warp diverged at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestWarp3Finite(t *testing.T) {
	f := &Fractal3{
		Base:   generators.NewPerlin(42),
		Params: Params{Frequency: 1.0, Octaves: 2, Persistence: 0.5, Lacunarity: 2.0},
	}
	w := &Warp3{Target: f, Channel: f, Strength: 0.5, Passes: 1}

	for _, p := range testkit.Coords3(300, 40) {
		v := w.Eval3(p.X, p.Y, p.Z)
		if math.IsNaN(v) || math.Abs(v) > 1.2 {
			t.Fatalf("warp3 at (%v, %v, %v) = %v out of range", p.X, p.Y, p.Z, v)
		}
	}
}
