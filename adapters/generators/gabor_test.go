package generators

import (
	"math"
	"testing"

	"gonoise/domain/noise"
	"gonoise/internal/testkit"
)

func gaborParams() noise.GaborParams {
	return noise.GaborParams{
		ImpulseDensity:  1.0,
		KernelBandwidth: 0.5,
		KernelFrequency: 10.0,
		KernelRadius:    3.0,
	}
}

func TestGaborDeterministic(t *testing.T) {
	a := NewGabor(42, gaborParams(), nil)
	b := NewGabor(42, gaborParams(), nil)

	for _, p := range testkit.Coords(100, 20) {
		va := a.Eval2(p.X, p.Y)
		if va != b.Eval2(p.X, p.Y) {
			t.Fatalf("same seed diverged at (%v, %v)", p.X, p.Y)
		}
		if va != a.Eval2(p.X, p.Y) {
			t.Fatalf("re-evaluation diverged at (%v, %v)", p.X, p.Y)
		}
	}
}

// Each cell's impulse stream is keyed by (seed, cell) alone, so the value at
// a point cannot depend on which points were evaluated before it.
func TestGaborEvaluationOrderIndependent(t *testing.T) {
	pts := testkit.Coords(50, 15)

	forward := NewGabor(7, gaborParams(), nil)
	want := make([]float64, len(pts))
	for i, p := range pts {
		want[i] = forward.Eval2(p.X, p.Y)
	}

	backward := NewGabor(7, gaborParams(), nil)
	for i := len(pts) - 1; i >= 0; i-- {
		if got := backward.Eval2(pts[i].X, pts[i].Y); got != want[i] {
			t.Fatalf("order-dependent value at (%v, %v): %v vs %v", pts[i].X, pts[i].Y, got, want[i])
		}
	}
}

func TestGaborFinite(t *testing.T) {
	g := NewGabor(3, gaborParams(), nil)
	for _, p := range testkit.Coords(500, 50) {
		v := g.Eval2(p.X, p.Y)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite value at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestGaborSeedsDiverge(t *testing.T) {
	a := NewGabor(1, gaborParams(), nil)
	b := NewGabor(2, gaborParams(), nil)

	same := 0
	pts := testkit.Coords(100, 20)
	for _, p := range pts {
		if a.Eval2(p.X, p.Y) == b.Eval2(p.X, p.Y) {
			same++
		}
	}
	if same > len(pts)/5 {
		t.Fatalf("seeds agree at %d/%d points", same, len(pts))
	}
}

func TestGaborOrientationFieldChangesOutput(t *testing.T) {
	isotropic := NewGabor(42, gaborParams(), nil)
	oriented := NewGabor(42, gaborParams(), noise.ConstantOrientation(math.Pi/4))

	differ := false
	for _, p := range testkit.Coords(100, 20) {
		if isotropic.Eval2(p.X, p.Y) != oriented.Eval2(p.X, p.Y) {
			differ = true
			break
		}
	}
	if !differ {
		t.Fatal("orientation field had no effect on any sample")
	}
}

func TestGaborLowDensityIsFlatNotNaN(t *testing.T) {
	p := gaborParams()
	p.ImpulseDensity = 1e-9
	g := NewGabor(42, p, nil)

	for _, pt := range testkit.Coords(200, 20) {
		v := g.Eval2(pt.X, pt.Y)
		if math.IsNaN(v) {
			t.Fatalf("NaN at (%v, %v) with near-zero density", pt.X, pt.Y)
		}
	}
}
