// Package noise defines the configuration surface of the field engine: the
// immutable parameter set a caller hands to construction, and its validation.
// A Config is validated once, before any generator is built; after that,
// evaluation never fails.
package noise

import (
	"fmt"

	"gonoise/domain/core"
)

// Variant selects the base field generator.
type Variant string

const (
	VariantPerlin      Variant = "perlin"
	VariantSimplex     Variant = "simplex"
	VariantWavelet     Variant = "wavelet"
	VariantGabor       Variant = "gabor"
	VariantAnisotropic Variant = "anisotropic"
	VariantWorley      Variant = "worley"
)

// Metric selects the distance function for cellular noise.
type Metric string

const (
	MetricEuclidean Metric = "euclidean"
	MetricManhattan Metric = "manhattan"
	MetricChebyshev Metric = "chebyshev"
	MetricMinkowski Metric = "minkowski" // p = 3
)

// Combine selects how the k nearest feature distances fold into one scalar.
type Combine string

const (
	CombineF1        Combine = "f1"
	CombineF2MinusF1 Combine = "f2_minus_f1"
	CombineWeighted  Combine = "weighted"
	CombineCrackle   Combine = "crackle"
)

// OrientationFunc returns the local flow angle in radians at a point. It must
// be pure: same point, same angle, regardless of evaluation order.
type OrientationFunc func(x, y float64) float64

// ConstantOrientation returns an orientation field with a single global angle.
func ConstantOrientation(angle float64) OrientationFunc {
	return func(x, y float64) float64 { return angle }
}

// Warp configures domain warping: displacing input coordinates by an
// independent noise field before sampling.
type Warp struct {
	Enabled  bool
	Strength float64 // > 0 when enabled
	Passes   int     // displacement applications; 0 means 1
}

// MaxWorleyK bounds how many nearest feature distances can be collected.
// The cellular search window guarantees k candidates only when the radius-1
// neighborhood (9 cells, one feature each) can supply them; beyond that the
// k-th distance would depend on features the window never visits.
const MaxWorleyK = 9

// WorleyParams configures the cellular generator.
type WorleyParams struct {
	K       int     // number of nearest feature distances collected, in [1, MaxWorleyK]
	Metric  Metric
	Combine Combine
	// Weights folds the K distances for CombineWeighted; len must equal K.
	Weights []float64
	// CracklePower shapes CombineCrackle, > 0.
	CracklePower float64
}

// GaborParams configures sparse Gabor convolution.
type GaborParams struct {
	ImpulseDensity  float64 // expected impulses per unit cell, > 0
	KernelBandwidth float64 // Gaussian envelope width, > 0
	KernelFrequency float64 // cosine carrier frequency, > 0
	KernelRadius    float64 // kernel support radius in bandwidth units, > 0
}

// WaveletParams configures band-limited tile synthesis.
type WaveletParams struct {
	TileSize int // power of two in [8, 512]
}

// AnisotropicParams configures the directional warp layered on a base
// gradient field. The generator owns only the coordinate transform; the
// direction field is authored by the caller.
type AnisotropicParams struct {
	Base        Variant // VariantPerlin or VariantGabor
	Anisotropy  float64 // stretch factor along the flow direction, > 0
	Angle       float64 // radians; used when Orientation is nil
	Orientation OrientationFunc
	// AngleStep turns the flow direction per fractal octave (radians); 0
	// keeps every octave on the same flow - the directional fBm mode.
	AngleStep float64
}

// Config is the complete, immutable parameter set for one generator
// instance. Reconfiguration means building a new Config; nothing here is
// mutated after construction.
type Config struct {
	Seed      int64
	Frequency float64 // > 0
	Variant   Variant

	// Fractal composition
	Octaves     int     // >= 1
	Persistence float64 // (0, 1]
	Lacunarity  float64 // >= 1
	Ridge       bool    // fold octaves through (1-|s|)^2
	Turbulence  bool    // fold octaves through |s|; exclusive with Ridge
	Warp        Warp

	Worley      WorleyParams
	Gabor       GaborParams
	Wavelet     WaveletParams
	Anisotropic AnisotropicParams
}

// Default returns a configuration with the engine's reference parameters.
// Variant-specific blocks carry usable defaults even for variants not
// selected, so switching Variant alone yields a valid Config.
func Default() Config {
	return Config{
		Seed:        42,
		Frequency:   1.0,
		Variant:     VariantPerlin,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Worley: WorleyParams{
			K:            1,
			Metric:       MetricEuclidean,
			Combine:      CombineF1,
			CracklePower: 2.0,
		},
		Gabor: GaborParams{
			ImpulseDensity:  1.0,
			KernelBandwidth: 0.5,
			KernelFrequency: 10.0,
			KernelRadius:    3.0,
		},
		Wavelet: WaveletParams{TileSize: 128},
		Anisotropic: AnisotropicParams{
			Base:       VariantPerlin,
			Anisotropy: 2.0,
		},
	}
}

// Validate checks every parameter range. It is the only place a caller can
// get an error out of the engine; all failures wrap core.ErrConfiguration.
func (c Config) Validate() error {
	if c.Frequency <= 0 {
		return core.NewConfigValueError("frequency", c.Frequency, "must be > 0")
	}
	if c.Octaves < 1 {
		return core.NewConfigValueError("octaves", c.Octaves, "must be >= 1")
	}
	if c.Persistence <= 0 || c.Persistence > 1 {
		return core.NewConfigValueError("persistence", c.Persistence, "must be in (0, 1]")
	}
	if c.Lacunarity < 1 {
		return core.NewConfigValueError("lacunarity", c.Lacunarity, "must be >= 1")
	}
	if c.Ridge && c.Turbulence {
		return core.NewConfigError("ridge/turbulence", "modes are mutually exclusive")
	}
	if c.Warp.Enabled {
		if c.Warp.Strength <= 0 {
			return core.NewConfigValueError("warp.strength", c.Warp.Strength, "must be > 0 when warp is enabled")
		}
		if c.Warp.Passes < 0 {
			return core.NewConfigValueError("warp.passes", c.Warp.Passes, "must be >= 0")
		}
	}

	switch c.Variant {
	case VariantPerlin, VariantSimplex:
		return nil
	case VariantWavelet:
		return c.Wavelet.validate()
	case VariantGabor:
		return c.Gabor.validate()
	case VariantWorley:
		return c.Worley.validate()
	case VariantAnisotropic:
		return c.Anisotropic.validate(c.Gabor)
	default:
		return core.ErrUnknownVariant
	}
}

func (p WaveletParams) validate() error {
	if p.TileSize < 8 || p.TileSize > 512 {
		return core.NewConfigValueError("wavelet.tile_size", p.TileSize, "must be in [8, 512]")
	}
	if p.TileSize&(p.TileSize-1) != 0 {
		return core.ErrTileSizeNotPowerOf2
	}
	return nil
}

func (p GaborParams) validate() error {
	if p.ImpulseDensity <= 0 {
		return core.NewConfigValueError("gabor.impulse_density", p.ImpulseDensity, "must be > 0")
	}
	if p.KernelBandwidth <= 0 {
		return core.NewConfigValueError("gabor.kernel_bandwidth", p.KernelBandwidth, "must be > 0")
	}
	if p.KernelFrequency <= 0 {
		return core.NewConfigValueError("gabor.kernel_frequency", p.KernelFrequency, "must be > 0")
	}
	if p.KernelRadius <= 0 {
		return core.NewConfigValueError("gabor.kernel_radius", p.KernelRadius, "must be > 0")
	}
	return nil
}

func (p WorleyParams) validate() error {
	if p.K < 1 || p.K > MaxWorleyK {
		return core.NewConfigValueError("worley.k", p.K,
			fmt.Sprintf("must be in [1, %d]", MaxWorleyK))
	}
	switch p.Metric {
	case MetricEuclidean, MetricManhattan, MetricChebyshev, MetricMinkowski:
	default:
		return core.NewConfigValueError("worley.metric", p.Metric, "unknown distance metric")
	}
	switch p.Combine {
	case CombineF1:
	case CombineF2MinusF1:
		if p.K < 2 {
			return core.NewConfigValueError("worley.k", p.K, "must be >= 2 for f2_minus_f1")
		}
	case CombineWeighted:
		if len(p.Weights) != p.K {
			return core.NewConfigValueError("worley.weights", len(p.Weights), "must supply exactly k weights")
		}
	case CombineCrackle:
		if p.CracklePower <= 0 {
			return core.NewConfigValueError("worley.crackle_power", p.CracklePower, "must be > 0")
		}
	default:
		return core.NewConfigValueError("worley.combine", p.Combine, "unknown combine rule")
	}
	return nil
}

func (p AnisotropicParams) validate(gabor GaborParams) error {
	switch p.Base {
	case VariantPerlin:
	case VariantGabor:
		if err := gabor.validate(); err != nil {
			return err
		}
	default:
		return core.NewConfigValueError("anisotropic.base", p.Base, "base must be perlin or gabor")
	}
	if p.Anisotropy <= 0 {
		return core.NewConfigValueError("anisotropic.anisotropy", p.Anisotropy, "must be > 0")
	}
	return nil
}
