package app

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"gonoise/ports"
)

// FieldProfile summarizes the empirical distribution of a sampled field.
// Useful for eyeballing whether a parameter change did what it should
// before committing to a full render.
type FieldProfile struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	Median  float64
	Q1      float64
	Q3      float64
}

// Profile samples the field over the window at the given resolution and
// computes summary statistics.
func Profile(field ports.Field2, win Window, w, h int) (FieldProfile, error) {
	values := SampleGrid(field, win, w, h)
	data := stats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return FieldProfile{}, err
	}
	stdDev, err := data.StandardDeviation()
	if err != nil {
		return FieldProfile{}, err
	}
	min, err := data.Min()
	if err != nil {
		return FieldProfile{}, err
	}
	max, err := data.Max()
	if err != nil {
		return FieldProfile{}, err
	}
	median, err := data.Median()
	if err != nil {
		return FieldProfile{}, err
	}
	quartiles, err := stats.Quartile(data)
	if err != nil {
		return FieldProfile{}, err
	}

	return FieldProfile{
		Samples: len(values),
		Mean:    mean,
		StdDev:  stdDev,
		Min:     min,
		Max:     max,
		Median:  median,
		Q1:      quartiles.Q1,
		Q3:      quartiles.Q3,
	}, nil
}

// SeedCorrelation samples two fields over the same window and returns the
// Pearson correlation of the resulting grids. Fields built from the same
// configuration correlate at 1; distinct seeds should land near 0.
func SeedCorrelation(a, b ports.Field2, win Window, w, h int) float64 {
	sa := SampleGrid(a, win, w, h)
	sb := SampleGrid(b, win, w, h)
	return stat.Correlation(sa, sb, nil)
}
