package wavg

import "github.com/cwbudde/algo-vecmath"

// Averager is a weighted moving average: the output of the underlying
// weighted sum divided by the number of taps. The division is folded into
// the weights at construction, so processing costs the same as a [Filter].
type Averager struct {
	f       *Filter
	weights []float64
}

// NewAverager creates an averaging filter from the given weight vector.
// Each output equals the weighted sum of the window divided by the tap
// count. Returns [ErrNoWeights] for an empty vector.
func NewAverager(weights []float64) (*Averager, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	w := make([]float64, len(weights))
	copy(w, weights)

	scaled := make([]float64, len(w))
	vecmath.ScaleBlock(scaled, w, 1/float64(len(w)))

	f, err := New(scaled)
	if err != nil {
		return nil, err
	}

	return &Averager{f: f, weights: w}, nil
}

// Process accepts one sample and returns the weighted average of the
// updated window.
func (a *Averager) Process(x float64) float64 {
	return a.f.Process(x)
}

// ProcessBlock filters a block of samples in-place.
func (a *Averager) ProcessBlock(buf []float64) {
	a.f.ProcessBlock(buf)
}

// Reset clears the history window and the running sum.
func (a *Averager) Reset() {
	a.f.Reset()
}

// Order returns the filter order (number of taps - 1).
func (a *Averager) Order() int {
	return a.f.Order()
}

// Weights returns a copy of the weight vector as supplied by the caller,
// without the tap-count scaling.
func (a *Averager) Weights() []float64 {
	w := make([]float64, len(a.weights))
	copy(w, a.weights)
	return w
}

// History returns a most-recent-first copy of the current sample window.
func (a *Averager) History() []float64 {
	return a.f.History()
}
