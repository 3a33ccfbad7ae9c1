package filter

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean replaces each pixel with the mean of its neighborhood.
type Mean struct{}

// Name implements Strategy.
func (Mean) Name() string { return "mean" }

// Score implements Strategy.
func (Mean) Score(center float64, neighborhood []float64, n int) float64 {
	return stat.Mean(neighborhood[:n], nil)
}

// Median replaces each pixel with the median of its neighborhood, the
// classic salt-and-pepper noise filter.
type Median struct{}

// Name implements Strategy.
func (Median) Name() string { return "median" }

// Score implements Strategy.
func (Median) Score(center float64, neighborhood []float64, n int) float64 {
	// Quantile needs sorted input; sort a copy so the shared scratch
	// buffer keeps its gather order for the caller.
	sorted := make([]float64, n)
	copy(sorted, neighborhood[:n])
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Minimum replaces each pixel with the smallest value in its neighborhood
// (grayscale erosion).
type Minimum struct{}

// Name implements Strategy.
func (Minimum) Name() string { return "min" }

// Score implements Strategy.
func (Minimum) Score(center float64, neighborhood []float64, n int) float64 {
	min := neighborhood[0]
	for i := 1; i < n; i++ {
		if neighborhood[i] < min {
			min = neighborhood[i]
		}
	}
	return min
}

// Maximum replaces each pixel with the largest value in its neighborhood
// (grayscale dilation).
type Maximum struct{}

// Name implements Strategy.
func (Maximum) Name() string { return "max" }

// Score implements Strategy.
func (Maximum) Score(center float64, neighborhood []float64, n int) float64 {
	max := neighborhood[0]
	for i := 1; i < n; i++ {
		if neighborhood[i] > max {
			max = neighborhood[i]
		}
	}
	return max
}

// StdDev replaces each pixel with the sample standard deviation of its
// neighborhood, a cheap local-texture measure.
type StdDev struct{}

// Name implements Strategy.
func (StdDev) Name() string { return "stddev" }

// Score implements Strategy.
func (StdDev) Score(center float64, neighborhood []float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return stat.StdDev(neighborhood[:n], nil)
}

// Range replaces each pixel with the spread (max minus min) of its
// neighborhood. High values track intensity edges.
type Range struct{}

// Name implements Strategy.
func (Range) Name() string { return "range" }

// Score implements Strategy.
func (Range) Score(center float64, neighborhood []float64, n int) float64 {
	min, max := neighborhood[0], neighborhood[0]
	for i := 1; i < n; i++ {
		v := neighborhood[i]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
