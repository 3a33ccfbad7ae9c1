// Package filter defines the pluggable scoring strategies applied to pixel
// neighborhoods by the filtering engine. A strategy is a pure function from
// one gathered neighborhood to one output scalar; implementations hold no
// mutable state and are safe to call from concurrently running row tasks.
package filter

// Strategy scores one pixel from its neighborhood.
//
// The engine hands each strategy the center value, a scratch buffer of
// gathered neighborhood values, and the number of populated entries. The
// buffer may be longer than n near volume boundaries; entries past n are
// stale and must be ignored. The neighborhood always includes the center
// value itself among its populated entries.
type Strategy interface {
	// Name returns the strategy's registry name, e.g. "localmax".
	Name() string

	// Score computes the output value for one pixel. It must not retain
	// neighborhood, which is reused for the next pixel on the same row.
	Score(center float64, neighborhood []float64, n int) float64
}
