package generators

import (
	"gonoise/domain/core"
)

// Skew constants for the simplex lattice.
const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518708 // (1 - 1/sqrt(3)) / 2
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0

	simplexScale2 = 70.0
	simplexScale3 = 32.0
)

// Simplex is skewed-simplex gradient noise in two or three dimensions.
// Output is nominally in [-1, 1]. Corner ordering inside a skewed cell uses
// strict comparisons on the fractional coordinates, so every point maps to
// exactly one simplex and adjacent simplices share corners without seams.
type Simplex struct {
	perm *permTable
}

// NewSimplex builds a simplex generator from a seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{perm: newPermTable(core.FoldSeed(seed))}
}

// Eval2 computes 2D simplex noise at (x, y).
func (s *Simplex) Eval2(x, y float64) float64 {
	// Skew into simplex space and locate the containing cell.
	sk := (x + y) * f2
	i, _ := floorInt32(x + sk)
	j, _ := floorInt32(y + sk)

	// Unskew the cell origin and measure the offset from it.
	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Pick the second corner: lower triangle walks x first, upper walks y.
	// The tie x0 == y0 goes to the upper triangle, consistently.
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i)
	jj := int(j)
	gi0 := s.perm.at(ii + s.perm.at(jj))
	gi1 := s.perm.at(ii + int(i1) + s.perm.at(jj+int(j1)))
	gi2 := s.perm.at(ii + 1 + s.perm.at(jj+1))

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2Dot(gi0, x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2Dot(gi1, x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2Dot(gi2, x2, y2)
	}

	return simplexScale2 * (n0 + n1 + n2)
}

// Eval3 computes 3D simplex noise at (x, y, z).
func (s *Simplex) Eval3(x, y, z float64) float64 {
	sk := (x + y + z) * f3
	i, _ := floorInt32(x + sk)
	j, _ := floorInt32(y + sk)
	k, _ := floorInt32(z + sk)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the fractional coordinates to walk the containing tetrahedron.
	// Strict comparisons give a total order; equal coordinates resolve the
	// same way at every query, so neighboring simplices agree on shared
	// corners.
	var i1, j1, k1, i2, j2, k2 int32
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= z0 && z0 > y0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case z0 > x0 && x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case z0 > y0 && y0 > x0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case y0 > x0 && z0 > x0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(i)
	jj := int(j)
	kk := int(k)
	gi0 := s.perm.at(ii + s.perm.at(jj+s.perm.at(kk)))
	gi1 := s.perm.at(ii + int(i1) + s.perm.at(jj+int(j1)+s.perm.at(kk+int(k1))))
	gi2 := s.perm.at(ii + int(i2) + s.perm.at(jj+int(j2)+s.perm.at(kk+int(k2))))
	gi3 := s.perm.at(ii + 1 + s.perm.at(jj+1+s.perm.at(kk+1)))

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad3Dot(gi0, x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad3Dot(gi1, x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad3Dot(gi2, x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * grad3Dot(gi3, x3, y3, z3)
	}

	return simplexScale3 * (n0 + n1 + n2 + n3)
}
