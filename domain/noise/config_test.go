package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonoise/domain/core"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	// Every variant must validate off the defaults with only Variant changed.
	for _, v := range []Variant{
		VariantPerlin, VariantSimplex, VariantWavelet,
		VariantGabor, VariantAnisotropic, VariantWorley,
	} {
		c := cfg
		c.Variant = v
		assert.NoError(t, c.Validate(), "variant %s", v)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frequency", func(c *Config) { c.Frequency = 0 }},
		{"negative frequency", func(c *Config) { c.Frequency = -0.5 }},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }},
		{"negative octaves", func(c *Config) { c.Octaves = -3 }},
		{"zero persistence", func(c *Config) { c.Persistence = 0 }},
		{"persistence above one", func(c *Config) { c.Persistence = 1.5 }},
		{"lacunarity below one", func(c *Config) { c.Lacunarity = 0.5 }},
		{"ridge and turbulence", func(c *Config) { c.Ridge = true; c.Turbulence = true }},
		{"warp without strength", func(c *Config) { c.Warp = Warp{Enabled: true} }},
		{"unknown variant", func(c *Config) { c.Variant = "value" }},
		{"tile size not power of two", func(c *Config) {
			c.Variant = VariantWavelet
			c.Wavelet.TileSize = 100
		}},
		{"tile size too small", func(c *Config) {
			c.Variant = VariantWavelet
			c.Wavelet.TileSize = 4
		}},
		{"gabor zero density", func(c *Config) {
			c.Variant = VariantGabor
			c.Gabor.ImpulseDensity = 0
		}},
		{"gabor zero bandwidth", func(c *Config) {
			c.Variant = VariantGabor
			c.Gabor.KernelBandwidth = 0
		}},
		{"worley zero k", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.K = 0
		}},
		{"worley k beyond search window", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.K = MaxWorleyK + 1
		}},
		{"worley k far beyond search window", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.K = 50
		}},
		{"worley f2 minus f1 with k 1", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.Combine = CombineF2MinusF1
			c.Worley.K = 1
		}},
		{"worley weighted without weights", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.Combine = CombineWeighted
			c.Worley.K = 3
		}},
		{"worley unknown metric", func(c *Config) {
			c.Variant = VariantWorley
			c.Worley.Metric = "hamming"
		}},
		{"anisotropic worley base", func(c *Config) {
			c.Variant = VariantAnisotropic
			c.Anisotropic.Base = VariantWorley
		}},
		{"anisotropic zero stretch", func(c *Config) {
			c.Variant = VariantAnisotropic
			c.Anisotropic.Anisotropy = 0
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, core.IsConfigurationError(err), "error should wrap ErrConfiguration: %v", err)
		})
	}
}

func TestWorleyKCapValidates(t *testing.T) {
	cfg := Default()
	cfg.Variant = VariantWorley
	cfg.Worley.K = MaxWorleyK
	assert.NoError(t, cfg.Validate(), "k at the cap must be accepted")
}

func TestAllSeedsAreValid(t *testing.T) {
	for _, seed := range []int64{0, -1, 1 << 62, -(1 << 62)} {
		cfg := Default()
		cfg.Seed = seed
		assert.NoError(t, cfg.Validate(), "seed %d", seed)
	}
}

func TestConstantOrientation(t *testing.T) {
	f := ConstantOrientation(1.25)
	if f(0, 0) != 1.25 || f(100, -3) != 1.25 {
		t.Error("ConstantOrientation should return the same angle everywhere")
	}
}
