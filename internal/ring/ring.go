// Package ring provides a fixed-capacity sample history indexed
// most-recent-first: position 0 is the newest sample, position k the sample
// from k steps ago.
package ring

// Buffer is a circular sample history of fixed capacity.
// A fresh Buffer holds all zeros, as if preceded by a silent stream.
type Buffer struct {
	data []float64
	head int
}

// New returns a zero-filled Buffer holding n samples. n must be >= 1.
func New(n int) *Buffer {
	return &Buffer{data: make([]float64, n)}
}

// Len returns the buffer capacity.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Push inserts x at position 0, shifting every stored sample one position
// toward the past, and returns the sample evicted from the last position.
func (b *Buffer) Push(x float64) float64 {
	b.head--
	if b.head < 0 {
		b.head = len(b.data) - 1
	}
	evicted := b.data[b.head]
	b.data[b.head] = x
	return evicted
}

// At returns the sample k positions in the past. k must be in [0, Len).
func (b *Buffer) At(k int) float64 {
	i := b.head + k
	if n := len(b.data); i >= n {
		i -= n
	}
	return b.data[i]
}

// Recent returns positions 0..Len-2 (everything but the oldest sample) as
// two contiguous spans in position order. Either span may be empty; their
// combined length is always Len-1.
func (b *Buffer) Recent() (first, second []float64) {
	n := len(b.data)
	end := b.head + n - 1
	if end > n {
		end = n
	}
	first = b.data[b.head:end]
	second = b.data[:n-1-len(first)]
	return first, second
}

// CopyTo writes a most-recent-first snapshot into dst.
// dst must have length >= Len.
func (b *Buffer) CopyTo(dst []float64) {
	m := copy(dst, b.data[b.head:])
	copy(dst[m:], b.data[:b.head])
}

// Reset zeroes the history.
func (b *Buffer) Reset() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.head = 0
}
