// Package generators implements the base field generators: Perlin, simplex,
// wavelet, Gabor, anisotropic and Worley noise. Each generator owns its
// precomputed tables, built once from the seed at construction; evaluation
// reads only those immutable tables and per-call stack state.
package generators

import (
	"math"

	"gonoise/domain/core"
)

// permTable is a seeded pseudo-random permutation of [0, 255], doubled so
// that perm[perm[i]+j] never indexes out of range.
type permTable struct {
	p [512]int
}

// newPermTable shuffles the identity sequence with a seeded Fisher-Yates
// driven by the core mangler.
func newPermTable(seed uint32) *permTable {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	for i := 255; i > 0; i-- {
		j := int(core.Mangle32(uint32(i), seed) % uint32(i+1))
		base[i], base[j] = base[j], base[i]
	}

	t := &permTable{}
	for i, v := range base {
		t.p[i] = v
		t.p[i+256] = v
	}
	return t
}

// hash2 scrambles a 2D lattice coordinate into [0, 255]. Inputs wrap modulo
// 256; negative coordinates wrap via two's complement masking.
func (t *permTable) hash2(x, y int32) int {
	xi := int(x) & 255
	yi := int(y) & 255
	return t.p[t.p[xi]+yi]
}

// hash3 extends hash2 with a third folded coordinate.
func (t *permTable) hash3(x, y, z int32) int {
	xi := int(x) & 255
	yi := int(y) & 255
	zi := int(z) & 255
	return t.p[t.p[t.p[xi]+yi]+zi]
}

// at looks up a raw permutation entry, wrapping the index modulo 256.
func (t *permTable) at(i int) int {
	return t.p[i&255]
}

// grad2 is the fixed 2D gradient set: the eight octant directions. Indexed by
// the low bits of a lattice hash.
var grad2 = [8][2]float64{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// grad3 is the fixed 3D gradient set: the twelve cube-edge midpoint
// directions.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// grad2Dot returns gradient . offset for a hashed 2D lattice corner.
func grad2Dot(hash int, x, y float64) float64 {
	g := grad2[hash&7]
	return g[0]*x + g[1]*y
}

// grad3Dot returns gradient . offset for a hashed 3D lattice corner.
func grad3Dot(hash int, x, y, z float64) float64 {
	g := grad3[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. C2-continuous, so
// value and first derivative are seamless across lattice cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// floorInt32 splits x into its containing integer cell and the fractional
// offset inside it.
func floorInt32(x float64) (int32, float64) {
	f := math.Floor(x)
	return int32(f), x - f
}
