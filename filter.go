package wavg

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavg/internal/ring"
)

// Filter is a weighted moving-average FIR filter with an incrementally
// maintained running sum.
//
// The running sum carries over between calls: evicting the oldest sample,
// re-weighting the surviving samples for their shifted positions, and adding
// the new sample updates it in place. The correction for the shift is a dot
// product with the precomputed adjacent-weight differences; when all weights
// are equal that correction vanishes and the update is a two-term adjustment.
type Filter struct {
	weights []float64
	diff    []float64 // diff[k] = weights[k+1] - weights[k]
	hist    *ring.Buffer
	sum     float64
	uniform bool
}

// New creates a filter from the given weight vector. weights[0] applies to
// the current sample, weights[k] to the sample from k steps ago. The slice
// is copied. Returns [ErrNoWeights] for an empty vector.
func New(weights []float64) (*Filter, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	w := make([]float64, len(weights))
	copy(w, weights)

	diff := make([]float64, len(w)-1)
	uniform := true
	for k := range diff {
		diff[k] = w[k+1] - w[k]
		if diff[k] != 0 {
			uniform = false
		}
	}

	return &Filter{
		weights: w,
		diff:    diff,
		hist:    ring.New(len(w)),
		uniform: uniform,
	}, nil
}

// Process accepts one sample and returns the weighted sum of the updated
// window:
//
//	y[t] = sum_{k=0}^{N} w[k] * x[t-k]
//
// with pre-stream samples treated as zero. Any real input is accepted;
// non-finite values propagate through the arithmetic per IEEE rules.
func (f *Filter) Process(x float64) float64 {
	if !f.uniform {
		// Surviving samples move one position toward the past, so each
		// contributes at weights[k+1] instead of weights[k].
		a, b := f.hist.Recent()
		f.sum += vecmath.DotProduct(f.diff[:len(a)], a)
		f.sum += vecmath.DotProduct(f.diff[len(a):], b)
	}
	oldest := f.hist.Push(x)
	f.sum -= f.weights[len(f.weights)-1] * oldest
	f.sum += f.weights[0] * x
	return f.sum
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.Process(x)
	}
}

// Reset clears the history window and the running sum.
func (f *Filter) Reset() {
	f.hist.Reset()
	f.sum = 0
}

// Order returns the filter order (number of taps - 1).
func (f *Filter) Order() int {
	return len(f.weights) - 1
}

// Weights returns a copy of the weight vector.
func (f *Filter) Weights() []float64 {
	w := make([]float64, len(f.weights))
	copy(w, f.weights)
	return w
}

// Sum returns the current running weighted sum, which equals the output of
// the most recent Process call (0 before the first call).
func (f *Filter) Sum() float64 {
	return f.sum
}

// History returns a most-recent-first copy of the current sample window.
func (f *Filter) History() []float64 {
	h := make([]float64, f.hist.Len())
	f.hist.CopyTo(h)
	return h
}
