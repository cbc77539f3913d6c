package generators

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"gonoise/domain/core"
)

// Wavelet is band-limited tile noise. The build phase synthesizes a seeded
// white-noise tile, centers it, and subtracts the tile's own
// downsample-then-upsample reconstruction; what remains is the band between
// the half-resolution low end and the raw high end. Evaluation projects the
// query point onto the tile with periodic wrapping and bilinear sampling, so
// opposite tile edges match bit-for-bit.
//
// The tile is built once per configuration and immutable afterwards; rebuild
// only happens through a new instance.
type Wavelet struct {
	size int
	tile []float64
}

// NewWavelet builds a 2D band-limited tile of the given size. The size must
// already be validated as a power of two.
func NewWavelet(seed int64, tileSize int) *Wavelet {
	w := &Wavelet{
		size: tileSize,
		tile: whiteNoise(core.FoldSeed(seed), tileSize*tileSize),
	}
	center(w.tile)
	w.bandLimit()
	return w
}

// Size returns the tile edge length.
func (w *Wavelet) Size() int { return w.size }

// Eval2 samples the tile at (x, y) in texel units, wrapping periodically.
func (w *Wavelet) Eval2(x, y float64) float64 {
	xi, fx := floorInt32(x)
	yi, fy := floorInt32(y)

	x0 := wrapIndex(int(xi), w.size)
	x1 := wrapIndex(int(xi)+1, w.size)
	y0 := wrapIndex(int(yi), w.size)
	y1 := wrapIndex(int(yi)+1, w.size)

	v00 := w.tile[y0*w.size+x0]
	v10 := w.tile[y0*w.size+x1]
	v01 := w.tile[y1*w.size+x0]
	v11 := w.tile[y1*w.size+x1]

	return lerp(fy, lerp(fx, v00, v10), lerp(fx, v01, v11))
}

// bandLimit removes the low-frequency half-band: tile -= upsample(downsample(tile)).
// Rows are independent, so the reconstruction is computed row-parallel; the
// group is drained before the constructor returns, which is the one-time
// happens-before barrier evaluation relies on.
func (w *Wavelet) bandLimit() {
	sz := w.size
	half := sz / 2

	// Downsample: periodic 2x2 block means at half resolution.
	coarse := make([]float64, half*half)
	for cy := 0; cy < half; cy++ {
		for cx := 0; cx < half; cx++ {
			s := w.tile[(2*cy)*sz+2*cx] +
				w.tile[(2*cy)*sz+2*cx+1] +
				w.tile[(2*cy+1)*sz+2*cx] +
				w.tile[(2*cy+1)*sz+2*cx+1]
			coarse[cy*half+cx] = s * 0.25
		}
	}

	// Upsample back to full resolution with periodic linear interpolation and
	// subtract in place.
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < sz; y++ {
		row := y
		g.Go(func() error {
			cy0, cy1, ty := upsampleSpan(row, half)
			for x := 0; x < sz; x++ {
				cx0, cx1, tx := upsampleSpan(x, half)
				low := lerp(ty,
					lerp(tx, coarse[cy0*half+cx0], coarse[cy0*half+cx1]),
					lerp(tx, coarse[cy1*half+cx0], coarse[cy1*half+cx1]))
				w.tile[row*sz+x] -= low
			}
			return nil
		})
	}
	// Workers never fail; Wait is only the completion barrier.
	_ = g.Wait()
}

// Wavelet3 is the volumetric counterpart of Wavelet: a 3D band-limited tile
// with periodic trilinear sampling.
type Wavelet3 struct {
	size int
	tile []float64
}

// NewWavelet3 builds a 3D band-limited tile of the given edge length.
func NewWavelet3(seed int64, tileSize int) *Wavelet3 {
	w := &Wavelet3{
		size: tileSize,
		tile: whiteNoise(core.FoldSeed(seed), tileSize*tileSize*tileSize),
	}
	center(w.tile)
	w.bandLimit()
	return w
}

// Size returns the tile edge length.
func (w *Wavelet3) Size() int { return w.size }

// Eval3 samples the tile at (x, y, z) in texel units, wrapping periodically.
func (w *Wavelet3) Eval3(x, y, z float64) float64 {
	xi, fx := floorInt32(x)
	yi, fy := floorInt32(y)
	zi, fz := floorInt32(z)

	sz := w.size
	x0 := wrapIndex(int(xi), sz)
	x1 := wrapIndex(int(xi)+1, sz)
	y0 := wrapIndex(int(yi), sz)
	y1 := wrapIndex(int(yi)+1, sz)
	z0 := wrapIndex(int(zi), sz)
	z1 := wrapIndex(int(zi)+1, sz)

	at := func(ix, iy, iz int) float64 {
		return w.tile[(iz*sz+iy)*sz+ix]
	}

	c0 := lerp(fy,
		lerp(fx, at(x0, y0, z0), at(x1, y0, z0)),
		lerp(fx, at(x0, y1, z0), at(x1, y1, z0)))
	c1 := lerp(fy,
		lerp(fx, at(x0, y0, z1), at(x1, y0, z1)),
		lerp(fx, at(x0, y1, z1), at(x1, y1, z1)))
	return lerp(fz, c0, c1)
}

func (w *Wavelet3) bandLimit() {
	sz := w.size
	half := sz / 2

	coarse := make([]float64, half*half*half)
	for cz := 0; cz < half; cz++ {
		for cy := 0; cy < half; cy++ {
			for cx := 0; cx < half; cx++ {
				var s float64
				for dz := 0; dz < 2; dz++ {
					for dy := 0; dy < 2; dy++ {
						for dx := 0; dx < 2; dx++ {
							s += w.tile[((2*cz+dz)*sz+2*cy+dy)*sz+2*cx+dx]
						}
					}
				}
				coarse[(cz*half+cy)*half+cx] = s * 0.125
			}
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for z := 0; z < sz; z++ {
		slice := z
		g.Go(func() error {
			cz0, cz1, tz := upsampleSpan(slice, half)
			for y := 0; y < sz; y++ {
				cy0, cy1, ty := upsampleSpan(y, half)
				for x := 0; x < sz; x++ {
					cx0, cx1, tx := upsampleSpan(x, half)
					at := func(ix, iy, iz int) float64 {
						return coarse[(iz*half+iy)*half+ix]
					}
					l0 := lerp(ty,
						lerp(tx, at(cx0, cy0, cz0), at(cx1, cy0, cz0)),
						lerp(tx, at(cx0, cy1, cz0), at(cx1, cy1, cz0)))
					l1 := lerp(ty,
						lerp(tx, at(cx0, cy0, cz1), at(cx1, cy0, cz1)),
						lerp(tx, at(cx0, cy1, cz1), at(cx1, cy1, cz1)))
					w.tile[(slice*sz+y)*sz+x] -= lerp(tz, l0, l1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// whiteNoise fills a tile with seeded values in [-1, 1).
func whiteNoise(seed uint32, n int) []float64 {
	tile := make([]float64, n)
	for i := range tile {
		tile[i] = core.SignedUnitFloat(core.Mangle32(uint32(i), seed))
	}
	return tile
}

// center subtracts the mean so the tile has no DC component.
func center(tile []float64) {
	var sum float64
	for _, v := range tile {
		sum += v
	}
	mean := sum / float64(len(tile))
	for i := range tile {
		tile[i] -= mean
	}
}

// wrapIndex wraps i into [0, n) for any sign of i.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// upsampleSpan maps a fine-grid index to the two surrounding coarse samples
// and the interpolation weight between them, with periodic wrapping. Fine
// texel centers sit at (i+0.5), coarse ones at (2c+1); the weight pattern is
// the fixed 1/4 - 3/4 half-phase, so the result is identical for any two
// indices congruent modulo the tile size - the tiling guarantee.
func upsampleSpan(i, half int) (c0, c1 int, t float64) {
	pos := (float64(i)+0.5)/2 - 0.5
	base := int(i) >> 1
	t = pos - float64(base)
	if t < 0 {
		base--
		t += 1
	}
	return wrapIndex(base, half), wrapIndex(base+1, half), t
}
