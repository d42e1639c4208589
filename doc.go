// Package wavg provides a streaming weighted moving-average (FIR) filter.
//
// A [Filter] holds a fixed weight vector and the matching window of recent
// input samples. Each call to [Filter.Process] accepts one sample and returns
//
//	y[t] = sum_{k=0}^{N} w[k] * x[t-k]
//
// with samples before the start of the stream treated as zero. The weighted
// sum is maintained incrementally across calls instead of being re-derived
// from the whole window on every sample.
//
// [Averager] divides the same sum by the tap count, and the weights
// subpackage generates common weight shapes (uniform, triangular,
// exponential). Coefficient design beyond that is a separate concern.
//
// A Filter is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
package wavg
