package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalMaximum(t *testing.T) {
	s := LocalMaximum{}
	assert.Equal(t, "localmax", s.Name())

	testCases := []struct {
		name         string
		center       float64
		neighborhood []float64
		expected     float64
	}{
		{"stronger neighbor", 5, []float64{4, 5, 6}, 0},
		{"true maximum", 6, []float64{4, 5, 6}, 1},
		{"plateau scores zero", 5, []float64{5, 5, 5}, 0},
		{"singleton scores zero", 5, []float64{5}, 0},
		{"one weaker neighbor suffices", 5, []float64{5, 5, 4}, 1},
		{"equal then greater", 5, []float64{5, 7, 4}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// The neighborhood always includes the center itself.
			got := s.Score(tc.center, tc.neighborhood, len(tc.neighborhood))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLocalMaximumIgnoresTail(t *testing.T) {
	// Stale values past the populated count must not affect the score.
	s := LocalMaximum{}
	neighborhood := []float64{3, 5, 4, 999, 999}
	assert.Equal(t, 1.0, s.Score(5, neighborhood, 3))
}

func TestStatStrategies(t *testing.T) {
	neighborhood := []float64{2, 4, 6, 8, 100}

	testCases := []struct {
		strategy Strategy
		name     string
		n        int
		expected float64
	}{
		{Mean{}, "mean", 4, 5},
		{Median{}, "median", 5, 6},
		{Minimum{}, "min", 5, 2},
		{Maximum{}, "max", 5, 100},
		{Range{}, "range", 5, 98},
		{Range{}, "range ignores tail", 4, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.strategy.Score(6, neighborhood, tc.n)
			assert.InDelta(t, tc.expected, got, 1e-12)
		})
	}
}

func TestStdDev(t *testing.T) {
	s := StdDev{}
	assert.Equal(t, "stddev", s.Name())

	// Sample standard deviation of {2, 4, 6} is 2.
	assert.InDelta(t, 2.0, s.Score(4, []float64{2, 4, 6}, 3), 1e-12)

	// Degenerate neighborhoods have no spread.
	assert.Equal(t, 0.0, s.Score(4, []float64{4}, 1))
}

func TestMedianDoesNotReorderScratch(t *testing.T) {
	neighborhood := []float64{9, 1, 5}
	Median{}.Score(5, neighborhood, 3)
	assert.Equal(t, []float64{9, 1, 5}, neighborhood)
}

func TestMedianEvenCount(t *testing.T) {
	got := Median{}.Score(0, []float64{1, 2, 3, 4}, 4)
	assert.False(t, math.IsNaN(got))
	assert.GreaterOrEqual(t, got, 2.0)
	assert.LessOrEqual(t, got, 3.0)
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	assert.Contains(t, Names(), "localmax")
	assert.Contains(t, Names(), "median")

	_, err := ByName("does-not-exist")
	assert.Error(t, err)
}
