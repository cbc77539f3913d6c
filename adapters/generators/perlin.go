package generators

import (
	"gonoise/domain/core"
)

// Perlin is classic gradient lattice noise in two or three dimensions.
// Output is nominally in [-1, 1]; the documented hard bound is |v| <= 1.2.
// At exact lattice points every corner offset is zero, so the value is
// exactly 0 - no special-casing needed.
type Perlin struct {
	perm *permTable
}

// NewPerlin builds a Perlin generator from a seed. Construction is the
// happens-before barrier: the permutation table is immutable afterwards and
// evaluation is concurrency-safe.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{perm: newPermTable(core.FoldSeed(seed))}
}

// Eval2 computes 2D Perlin noise at (x, y).
func (p *Perlin) Eval2(x, y float64) float64 {
	xi, xf := floorInt32(x)
	yi, yf := floorInt32(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm.hash2(xi, yi)
	ab := p.perm.hash2(xi, yi+1)
	ba := p.perm.hash2(xi+1, yi)
	bb := p.perm.hash2(xi+1, yi+1)

	x1 := lerp(u, grad2Dot(aa, xf, yf), grad2Dot(ba, xf-1, yf))
	x2 := lerp(u, grad2Dot(ab, xf, yf-1), grad2Dot(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Eval3 computes 3D Perlin noise at (x, y, z).
func (p *Perlin) Eval3(x, y, z float64) float64 {
	xi, xf := floorInt32(x)
	yi, yf := floorInt32(y)
	zi, zf := floorInt32(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	aaa := p.perm.hash3(xi, yi, zi)
	aba := p.perm.hash3(xi, yi+1, zi)
	aab := p.perm.hash3(xi, yi, zi+1)
	abb := p.perm.hash3(xi, yi+1, zi+1)
	baa := p.perm.hash3(xi+1, yi, zi)
	bba := p.perm.hash3(xi+1, yi+1, zi)
	bab := p.perm.hash3(xi+1, yi, zi+1)
	bbb := p.perm.hash3(xi+1, yi+1, zi+1)

	x1 := lerp(u, grad3Dot(aaa, xf, yf, zf), grad3Dot(baa, xf-1, yf, zf))
	x2 := lerp(u, grad3Dot(aba, xf, yf-1, zf), grad3Dot(bba, xf-1, yf-1, zf))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad3Dot(aab, xf, yf, zf-1), grad3Dot(bab, xf-1, yf, zf-1))
	x2 = lerp(u, grad3Dot(abb, xf, yf-1, zf-1), grad3Dot(bbb, xf-1, yf-1, zf-1))
	y2 := lerp(v, x1, x2)

	return lerp(w, y1, y2)
}
