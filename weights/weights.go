// Package weights generates weight vectors for the wavg filter runtime.
//
// Vectors are ordered most-recent-first: index 0 weights the current sample,
// index k the sample from k steps ago. The runtime accepts any coefficients;
// this package only covers the common shapes.
package weights

import "github.com/cwbudde/algo-vecmath"

// Uniform returns n ones. Feeding these to a filter yields a moving sum
// over the last n samples. Returns nil for n <= 0.
func Uniform(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// MovingAverage returns n weights of 1/n, the simple moving average.
// Returns nil for n <= 0.
func MovingAverage(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	v := 1 / float64(n)
	for i := range w {
		w[i] = v
	}
	return w
}

// Triangular returns linearly decreasing weights n, n-1, .., 1 scaled to
// unit sum, the classic weighted moving average. Returns nil for n <= 0.
func Triangular(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	scale := 2 / (float64(n) * float64(n+1))
	for i := range w {
		w[i] = float64(n-i) * scale
	}
	return w
}

// Exponential returns weights decay^k for k = 0..n-1 scaled to unit sum.
// decay must be in (0, 1]; returns nil otherwise or for n <= 0.
func Exponential(n int, decay float64) []float64 {
	if n <= 0 || decay <= 0 || decay > 1 {
		return nil
	}
	w := make([]float64, n)
	v := 1.0
	for i := range w {
		w[i] = v
		v *= decay
	}
	return Normalize(w)
}

// Normalize returns a copy of w scaled so the weights sum to 1, which gives
// the filter unit DC gain. A zero-sum vector is returned unscaled.
func Normalize(w []float64) []float64 {
	out := make([]float64, len(w))
	copy(out, w)
	sum := vecmath.Sum(out)
	if sum == 0 {
		return out
	}
	vecmath.ScaleBlockInPlace(out, 1/sum)
	return out
}

// DCGain returns the sum of the weights, the filter's gain for a constant
// input.
func DCGain(w []float64) float64 {
	return vecmath.Sum(w)
}
