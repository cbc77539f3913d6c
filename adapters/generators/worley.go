package generators

import (
	"math"

	"gonoise/domain/core"
	"gonoise/domain/noise"
)

// Worley is cellular noise over a conceptually infinite grid of unit cells,
// each owning one feature point jittered inside it. Feature points are
// derived on demand from (seed, cell) - nothing is stored between
// evaluations.
//
// Eval2/Eval3 map the combined distance onto [-1, 1]; Distances2/Distances3
// expose the raw k nearest distances for callers that need them.
type Worley struct {
	seed         uint32
	k            int
	metric       noise.Metric
	combine      noise.Combine
	weights      []float64
	cracklePower float64
	radius2      int32
	radius3      int32
}

// NewWorley builds a cellular generator from a validated parameter set.
func NewWorley(seed int64, p noise.WorleyParams) *Worley {
	weights := make([]float64, len(p.Weights))
	copy(weights, p.Weights)
	return &Worley{
		seed:         core.FoldSeed(seed),
		k:            p.K,
		metric:       p.Metric,
		combine:      p.Combine,
		weights:      weights,
		cracklePower: p.CracklePower,
		radius2:      searchRadius(p.Metric, p.K, 2),
		radius3:      searchRadius(p.Metric, p.K, 3),
	}
}

// searchRadius returns the cell neighborhood radius that guarantees the k
// nearest feature points cannot lie outside the searched window.
//
// With one feature per unit cell (jitter anywhere inside the cell), the own
// cell plus any neighbor always supplies k candidate points for k <= 9, so
// the k-th smallest distance found inside the radius-1 window is bounded by
// that window's metric diameter; any feature outside a radius-r window has
// some axis offset of at least r+1 cells and is therefore farther than r
// under every metric here. r must only exceed the bound:
//
//	                 k = 1 (own-cell diameter)    k > 1 (radius-1 window diameter)
//	Euclidean  2D/3D   sqrt(2) / sqrt(3) -> 2      2sqrt(2) -> 3 / 2sqrt(3) -> 4
//	Manhattan  2D/3D   2 / 3             -> 2/3    4 -> 4 / 6 -> 6
//	Chebyshev  2D/3D   1                 -> 1      2 -> 2
//
// Minkowski p=3 is bounded above by Euclidean and below by Chebyshev, so the
// Euclidean radii are conservative for it. The Euclidean 1-cell shortcut
// sometimes quoted for k = 1 does not survive the worst case (an own-cell
// feature at distance near sqrt(2) can lose to a point just outside the 3x3
// window), hence the wider radii.
func searchRadius(metric noise.Metric, k int, dims int) int32 {
	switch metric {
	case noise.MetricManhattan:
		if k == 1 {
			return int32(dims)
		}
		return int32(2 * dims)
	case noise.MetricChebyshev:
		if k == 1 {
			return 1
		}
		return 2
	default: // Euclidean, Minkowski
		if k == 1 {
			return 2
		}
		if dims == 3 {
			return 4
		}
		return 3
	}
}

// FeaturePoint2 returns the feature point owned by a 2D cell.
func (w *Worley) FeaturePoint2(cx, cy int32) (float64, float64) {
	fx := float64(cx) + core.UnitFloat(core.Hash2(w.seed, cx, cy))
	fy := float64(cy) + core.UnitFloat(core.Hash2(w.seed^0x85ebca6b, cx, cy))
	return fx, fy
}

// FeaturePoint3 returns the feature point owned by a 3D cell.
func (w *Worley) FeaturePoint3(cx, cy, cz int32) (float64, float64, float64) {
	fx := float64(cx) + core.UnitFloat(core.Hash3(w.seed, cx, cy, cz))
	fy := float64(cy) + core.UnitFloat(core.Hash3(w.seed^0x85ebca6b, cx, cy, cz))
	fz := float64(cz) + core.UnitFloat(core.Hash3(w.seed^0xc2b2ae35, cx, cy, cz))
	return fx, fy, fz
}

// Distances2 collects the k smallest feature distances to (x, y), ascending.
func (w *Worley) Distances2(x, y float64) []float64 {
	best := newKSmallest(w.k)
	cellX, _ := floorInt32(x)
	cellY, _ := floorInt32(y)

	for dy := -w.radius2; dy <= w.radius2; dy++ {
		for dx := -w.radius2; dx <= w.radius2; dx++ {
			fx, fy := w.FeaturePoint2(cellX+dx, cellY+dy)
			best.insert(w.distance2(x-fx, y-fy))
		}
	}
	return best.values
}

// Distances3 collects the k smallest feature distances to (x, y, z), ascending.
func (w *Worley) Distances3(x, y, z float64) []float64 {
	best := newKSmallest(w.k)
	cellX, _ := floorInt32(x)
	cellY, _ := floorInt32(y)
	cellZ, _ := floorInt32(z)

	for dz := -w.radius3; dz <= w.radius3; dz++ {
		for dy := -w.radius3; dy <= w.radius3; dy++ {
			for dx := -w.radius3; dx <= w.radius3; dx++ {
				fx, fy, fz := w.FeaturePoint3(cellX+dx, cellY+dy, cellZ+dz)
				best.insert(w.distance3(x-fx, y-fy, z-fz))
			}
		}
	}
	return best.values
}

// Eval2 maps the combined distance onto [-1, 1]: F1 is bright near feature
// points (1 - 2*min(F1, 1)), F2-F1 brightens cell walls, weighted sums and
// crackle follow the same clamp-then-map rule.
func (w *Worley) Eval2(x, y float64) float64 {
	return w.combineDistances(w.Distances2(x, y))
}

// Eval3 is the 3D counterpart of Eval2.
func (w *Worley) Eval3(x, y, z float64) float64 {
	return w.combineDistances(w.Distances3(x, y, z))
}

func (w *Worley) combineDistances(d []float64) float64 {
	switch w.combine {
	case noise.CombineF2MinusF1:
		return 2*math.Min(d[1]-d[0], 1) - 1
	case noise.CombineCrackle:
		return 1 - 2*math.Pow(math.Min(d[0], 1), w.cracklePower)
	case noise.CombineWeighted:
		var sum, norm float64
		for i, wt := range w.weights {
			sum += wt * d[i]
			norm += math.Abs(wt)
		}
		if norm == 0 {
			return 0
		}
		return 1 - 2*math.Min(sum/norm, 1)
	default: // F1
		return 1 - 2*math.Min(d[0], 1)
	}
}

func (w *Worley) distance2(dx, dy float64) float64 {
	switch w.metric {
	case noise.MetricManhattan:
		return math.Abs(dx) + math.Abs(dy)
	case noise.MetricChebyshev:
		return math.Max(math.Abs(dx), math.Abs(dy))
	case noise.MetricMinkowski:
		const p = 3.0
		ax, ay := math.Abs(dx), math.Abs(dy)
		return math.Pow(ax*ax*ax+ay*ay*ay, 1/p)
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

func (w *Worley) distance3(dx, dy, dz float64) float64 {
	switch w.metric {
	case noise.MetricManhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case noise.MetricChebyshev:
		return math.Max(math.Abs(dx), math.Max(math.Abs(dy), math.Abs(dz)))
	case noise.MetricMinkowski:
		const p = 3.0
		ax, ay, az := math.Abs(dx), math.Abs(dy), math.Abs(dz)
		return math.Pow(ax*ax*ax+ay*ay*ay+az*az*az, 1/p)
	default:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
}

// kSmallest keeps the k smallest values seen, ascending, by insertion into a
// fixed-size slice. k is tiny (typically 1 or 2), so linear insertion beats
// a heap.
type kSmallest struct {
	values []float64
}

func newKSmallest(k int) *kSmallest {
	v := make([]float64, k)
	for i := range v {
		v[i] = math.MaxFloat64
	}
	return &kSmallest{values: v}
}

func (s *kSmallest) insert(d float64) {
	i := len(s.values) - 1
	if d >= s.values[i] {
		return
	}
	for i > 0 && d < s.values[i-1] {
		s.values[i] = s.values[i-1]
		i--
	}
	s.values[i] = d
}
