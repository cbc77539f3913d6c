// Package testkit supplies deterministic coordinate corpora shared by the
// generator and composition tests. Corpora are derived from fixed linear
// congruences rather than a PRNG so the sample points never move between
// runs or platforms.
package testkit

// Point2 is a 2D sample coordinate.
type Point2 struct {
	X, Y float64
}

// Point3 is a 3D sample coordinate.
type Point3 struct {
	X, Y, Z float64
}

// Coords returns n deterministic 2D points spread over roughly
// [-span, span] on both axes, including negative and fractional values.
func Coords(n int, span float64) []Point2 {
	pts := make([]Point2, n)
	for i := 0; i < n; i++ {
		u := fract(float64(i)*0.6180339887498949 + 0.137)
		v := fract(float64(i)*0.7548776662466927 + 0.421)
		pts[i] = Point2{
			X: (2*u - 1) * span,
			Y: (2*v - 1) * span,
		}
	}
	return pts
}

// Coords3 returns n deterministic 3D points spread over roughly
// [-span, span] on all axes.
func Coords3(n int, span float64) []Point3 {
	pts := make([]Point3, n)
	for i := 0; i < n; i++ {
		u := fract(float64(i)*0.8191725133961645 + 0.271)
		v := fract(float64(i)*0.6710436067037893 + 0.577)
		w := fract(float64(i)*0.5497004779019703 + 0.903)
		pts[i] = Point3{
			X: (2*u - 1) * span,
			Y: (2*v - 1) * span,
			Z: (2*w - 1) * span,
		}
	}
	return pts
}

func fract(x float64) float64 {
	return x - float64(int(x))
}
