// Package app assembles validated configurations into evaluators and offers
// caller-side conveniences over them: parallel grid sampling and field
// profiling. It is the only package that knows every generator; everything
// below it sees one variant at a time.
package app

import (
	"fmt"

	"gonoise/adapters/fractal"
	"gonoise/adapters/generators"
	"gonoise/domain/core"
	"gonoise/domain/noise"
	"gonoise/internal"
	"gonoise/ports"
)

// BuildField2 validates cfg and assembles the 2D evaluation pipeline:
// base generator, fractal composition, optional domain warp. The returned
// field is immutable and safe for concurrent use.
func BuildField2(cfg noise.Config) (ports.Field2, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := baseField2(cfg)
	if err != nil {
		return nil, err
	}

	field := &fractal.Fractal2{Base: base, Params: fractalParams(cfg)}
	if !cfg.Warp.Enabled {
		return field, nil
	}
	return &fractal.Warp2{
		Target:   field,
		Channel:  field,
		Strength: cfg.Warp.Strength,
		Passes:   cfg.Warp.Passes,
	}, nil
}

// BuildField3 is the 3D counterpart of BuildField2. Gabor and anisotropic
// variants carry two-dimensional kernels and are rejected here rather than
// silently flattened.
func BuildField3(cfg noise.Config) (ports.Field3, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := baseField3(cfg)
	if err != nil {
		return nil, err
	}

	field := &fractal.Fractal3{Base: base, Params: fractalParams(cfg)}
	if !cfg.Warp.Enabled {
		return field, nil
	}
	return &fractal.Warp3{
		Target:   field,
		Channel:  field,
		Strength: cfg.Warp.Strength,
		Passes:   cfg.Warp.Passes,
	}, nil
}

func fractalParams(cfg noise.Config) fractal.Params {
	p := fractal.Params{
		Frequency:   cfg.Frequency,
		Octaves:     cfg.Octaves,
		Persistence: cfg.Persistence,
		Lacunarity:  cfg.Lacunarity,
		Ridge:       cfg.Ridge,
		Turbulence:  cfg.Turbulence,
	}
	if cfg.Variant == noise.VariantAnisotropic {
		p.AngleStep = cfg.Anisotropic.AngleStep
	}
	return p
}

func baseField2(cfg noise.Config) (ports.Field2, error) {
	switch cfg.Variant {
	case noise.VariantPerlin:
		return generators.NewPerlin(cfg.Seed), nil
	case noise.VariantSimplex:
		return generators.NewSimplex(cfg.Seed), nil
	case noise.VariantWavelet:
		internal.DefaultLogger.Debug("building %dx%d wavelet tile (seed %d)",
			cfg.Wavelet.TileSize, cfg.Wavelet.TileSize, cfg.Seed)
		return generators.NewWavelet(cfg.Seed, cfg.Wavelet.TileSize), nil
	case noise.VariantGabor:
		return generators.NewGabor(cfg.Seed, cfg.Gabor, nil), nil
	case noise.VariantWorley:
		return generators.NewWorley(cfg.Seed, cfg.Worley), nil
	case noise.VariantAnisotropic:
		base, err := anisotropicBase(cfg)
		if err != nil {
			return nil, err
		}
		return generators.NewAnisotropic(base, cfg.Anisotropic), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownVariant, cfg.Variant)
	}
}

func baseField3(cfg noise.Config) (ports.Field3, error) {
	switch cfg.Variant {
	case noise.VariantPerlin:
		return generators.NewPerlin(cfg.Seed), nil
	case noise.VariantSimplex:
		return generators.NewSimplex(cfg.Seed), nil
	case noise.VariantWavelet:
		size := cfg.Wavelet.TileSize
		// A cubic tile at the 2D default edge would be 2M texels; cap the
		// volumetric build where memory stays bounded.
		if size > maxWaveletTile3 {
			return nil, core.NewConfigValueError("wavelet.tile_size", size,
				fmt.Sprintf("must be <= %d for 3D fields", maxWaveletTile3))
		}
		internal.DefaultLogger.Debug("building %dx%dx%d wavelet tile (seed %d)",
			size, size, size, cfg.Seed)
		return generators.NewWavelet3(cfg.Seed, size), nil
	case noise.VariantWorley:
		return generators.NewWorley(cfg.Seed, cfg.Worley), nil
	case noise.VariantGabor, noise.VariantAnisotropic:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedIn3D, cfg.Variant)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownVariant, cfg.Variant)
	}
}

// maxWaveletTile3 bounds the cubic tile edge for volumetric wavelet noise.
const maxWaveletTile3 = 128

// anisotropicBase builds the gradient field the anisotropic transform wraps.
// Validation already restricts Base to perlin or gabor.
func anisotropicBase(cfg noise.Config) (ports.Field2, error) {
	switch cfg.Anisotropic.Base {
	case noise.VariantPerlin:
		return generators.NewPerlin(cfg.Seed), nil
	case noise.VariantGabor:
		orientation := cfg.Anisotropic.Orientation
		if orientation == nil {
			orientation = noise.ConstantOrientation(cfg.Anisotropic.Angle)
		}
		return generators.NewGabor(cfg.Seed, cfg.Gabor, orientation), nil
	default:
		return nil, fmt.Errorf("%w: anisotropic base %q", core.ErrUnknownVariant, cfg.Anisotropic.Base)
	}
}
