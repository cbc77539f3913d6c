package generators

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"gonoise/domain/core"
	"gonoise/domain/noise"
)

// Gabor is sparse-convolution noise: a Poisson-distributed set of impulses
// per grid cell, each contributing a Gaussian-windowed oriented cosine. The
// impulse set of a cell is a pure function of (seed, cell) - a fresh seeded
// stream is opened per cell, so evaluation order and neighboring cells can
// never influence a draw.
//
// Orientation is isotropic (random per impulse) unless an orientation field
// is supplied, in which case the carrier aligns to the local flow angle.
type Gabor struct {
	seed        uint32
	density     float64
	bandwidth   float64
	carrier     float64
	radius      float64 // kernel support, in bandwidth units
	orientation noise.OrientationFunc
	cellRadius  int32
}

// NewGabor builds a Gabor generator from a validated parameter set.
func NewGabor(seed int64, p noise.GaborParams, orientation noise.OrientationFunc) *Gabor {
	return &Gabor{
		seed:        core.FoldSeed(seed),
		density:     p.ImpulseDensity,
		bandwidth:   p.KernelBandwidth,
		carrier:     p.KernelFrequency,
		radius:      p.KernelRadius,
		orientation: orientation,
		cellRadius:  int32(math.Ceil(p.KernelRadius * p.KernelBandwidth)),
	}
}

// Eval2 sums the kernel contributions of every impulse whose support reaches
// (x, y). Output is approximately normal, renormalized by the accumulated
// envelope weight; |v| stays close to [-1, 1].
func (g *Gabor) Eval2(x, y float64) float64 {
	cellX, _ := floorInt32(x)
	cellY, _ := floorInt32(y)

	support := g.radius * g.bandwidth
	supportSq := support * support

	var sum, weight float64
	for dy := -g.cellRadius; dy <= g.cellRadius; dy++ {
		for dx := -g.cellRadius; dx <= g.cellRadius; dx++ {
			cx := cellX + dx
			cy := cellY + dy

			stream := rand.NewPCG(core.StreamSeed(g.seed, cx, cy), uint64(g.seed))
			count := int(distuv.Poisson{Lambda: g.density, Src: stream}.Rand())
			rng := rand.New(stream)

			for i := 0; i < count; i++ {
				ix := float64(cx) + rng.Float64()
				iy := float64(cy) + rng.Float64()
				amp := 1 - 2*rng.Float64()
				theta := rng.Float64() * 2 * math.Pi
				phase := rng.Float64() * 2 * math.Pi

				ox := x - ix
				oy := y - iy
				distSq := ox*ox + oy*oy
				if distSq > supportSq {
					continue
				}

				if g.orientation != nil {
					theta = g.orientation(ix, iy)
				}

				envelope := math.Exp(-math.Pi * distSq / (g.bandwidth * g.bandwidth))
				u := ox*math.Cos(theta) - oy*math.Sin(theta)
				sum += amp * envelope * math.Cos(g.carrier*u+phase)
				weight += envelope
			}
		}
	}

	// Empty neighborhoods (low density) are flat field, not an error.
	if weight <= 1e-3 {
		return 0
	}
	return sum / math.Sqrt(weight)
}
