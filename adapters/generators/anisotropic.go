package generators

import (
	"math"

	"gonoise/domain/noise"
	"gonoise/ports"
)

// Anisotropic layers a directional warp over a base gradient field: query
// coordinates are compressed across the local flow direction (equivalently,
// features stretch along it) before delegating to the base generator. The
// generator owns only the coordinate transform; the direction field comes in
// through the configuration, either as a constant angle or as a closed-form
// function of position.
type Anisotropic struct {
	base        ports.Field2
	orientation noise.OrientationFunc
	anisotropy  float64
}

// NewAnisotropic wraps a base field with a directional transform. A nil
// orientation falls back to a constant zero angle.
func NewAnisotropic(base ports.Field2, p noise.AnisotropicParams) *Anisotropic {
	orientation := p.Orientation
	if orientation == nil {
		orientation = noise.ConstantOrientation(p.Angle)
	}
	return &Anisotropic{
		base:        base,
		orientation: orientation,
		anisotropy:  p.Anisotropy,
	}
}

// Eval2 transforms (x, y) into the local flow frame and samples the base
// field there. The output range is the base generator's range.
func (a *Anisotropic) Eval2(x, y float64) float64 {
	return a.Eval2Rotated(x, y, 0)
}

// Eval2Rotated evaluates with the flow direction turned by an extra angle on
// top of the orientation field, implementing ports.Steerable2. Octave
// composition uses this for the directional mode, where each octave's flow
// rotates a fixed step further.
func (a *Anisotropic) Eval2Rotated(x, y, extra float64) float64 {
	angle := a.orientation(x, y) + extra

	// Compress the cross-flow axis, then rotate into the flow direction.
	sx := x
	sy := y / a.anisotropy

	sin, cos := math.Sincos(angle)
	rx := sx*cos - sy*sin
	ry := sx*sin + sy*cos

	return a.base.Eval2(rx, ry)
}
