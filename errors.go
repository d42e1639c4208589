package wavg

import "errors"

// Errors reported by filter construction and response computation.
var (
	ErrNoWeights   = errors.New("wavg: weight vector must not be empty")
	ErrSpectrumLen = errors.New("wavg: fft size must be >= number of taps")
)
