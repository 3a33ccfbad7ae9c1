// Package metrics computes summary statistics for a filtering pass by
// comparing the input volume with the filtered output. The numbers are
// meant for reporting and regression checks, not for steering the pass.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"voxelfilter3d/pkg/voxel"
)

// Stats holds the comparison metrics between an input volume and the
// filtered output produced from it.
type Stats struct {
	// RMSE is the root mean square difference between input and output
	// intensities. Identity filters score 0.
	RMSE float64

	// Correlation is the Pearson correlation between input and output.
	// Smoothing filters stay close to 1; detector filters such as the
	// local-maximum score drop much lower.
	Correlation float64

	// EntropyDiff is the absolute difference in Shannon entropy (256-bin
	// histogram) between input and output, a measure of how much
	// information content the filter changed.
	EntropyDiff float64

	// ResponseMean, ResponseMin and ResponseMax summarize the output
	// value distribution.
	ResponseMean float64
	ResponseMin  float64
	ResponseMax  float64
}

// Compare computes pass statistics for an input volume and the output
// filtered from it. Both volumes must have the same shape.
func Compare(in, out *voxel.Volume) (Stats, error) {
	if in.Shape() != out.Shape() {
		return Stats{}, fmt.Errorf("metrics: shape mismatch: input %v, output %v", in.Shape(), out.Shape())
	}

	a := flatten(in)
	b := flatten(out)

	var s Stats
	s.RMSE = rmse(a, b)
	s.Correlation = stat.Correlation(a, b, nil)
	s.EntropyDiff = math.Abs(entropy(a) - entropy(b))
	s.ResponseMean = stat.Mean(b, nil)
	s.ResponseMin, s.ResponseMax = minMax(b)
	return s, nil
}

// flatten reads every sample of a volume into one float64 slice, plane by
// plane in T, Z, C order.
func flatten(v *voxel.Volume) []float64 {
	shape := v.Shape()
	data := make([]float64, 0, shape.Voxels())
	for t := 0; t < shape.T; t++ {
		for z := 0; z < shape.Z; z++ {
			for c := 0; c < shape.C; c++ {
				plane := v.Plane(t, z, c)
				for i := 0; i < shape.PlaneLen(); i++ {
					data = append(data, voxel.Get(plane, i))
				}
			}
		}
	}
	return data
}

// rmse computes the root mean square difference of two equal-length series.
func rmse(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	mse := 0.0
	for i := range a {
		diff := a[i] - b[i]
		mse += diff * diff
	}
	mse /= float64(len(a))
	return math.Sqrt(mse)
}

// entropy computes the Shannon entropy of data over a 256-bin histogram.
func entropy(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	min, max := minMax(data)
	if max <= min {
		return 0
	}

	const numBins = 256
	hist := make([]float64, numBins)
	binWidth := (max - min) / float64(numBins)

	for _, v := range data {
		binIdx := int((v - min) / binWidth)
		if binIdx >= numBins {
			binIdx = numBins - 1
		} else if binIdx < 0 {
			binIdx = 0
		}
		hist[binIdx]++
	}

	e := 0.0
	for _, count := range hist {
		if count > 0 {
			p := count / float64(n)
			e -= p * math.Log2(p)
		}
	}
	return e
}

// minMax returns the smallest and largest value in data.
func minMax(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	min, max = data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
