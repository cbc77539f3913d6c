package ports

// Field2 is a deterministic scalar field over the plane. Implementations are
// immutable after construction: Eval2 is a pure function, safe to call from
// any number of goroutines concurrently, and returns bit-identical results
// for identical inputs. Values are finite and NaN-free for all finite
// coordinates.
type Field2 interface {
	Eval2(x, y float64) float64
}

// Field3 is the three-dimensional counterpart of Field2, with the same
// purity and immutability contract.
type Field3 interface {
	Eval3(x, y, z float64) float64
}

// Steerable2 is a planar field with a rotatable flow direction. Eval2Rotated
// behaves like Eval2 with the field's local orientation turned by the extra
// angle; Eval2Rotated(x, y, 0) equals Eval2(x, y). Octave composition uses
// this to step the flow direction per octave.
type Steerable2 interface {
	Field2
	Eval2Rotated(x, y, angle float64) float64
}

// Field2Func adapts a pure function to the Field2 port.
type Field2Func func(x, y float64) float64

// Eval2 implements Field2.
func (f Field2Func) Eval2(x, y float64) float64 { return f(x, y) }

// Field3Func adapts a pure function to the Field3 port.
type Field3Func func(x, y, z float64) float64

// Eval3 implements Field3.
func (f Field3Func) Eval3(x, y, z float64) float64 { return f(x, y, z) }
