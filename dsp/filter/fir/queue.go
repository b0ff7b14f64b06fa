package fir

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// QueueT holds the circular sample histories for a bank of FIR filters
// evaluated in parallel. Each of the count queues stores its window
// twice, at offsets xi and xi+n, so the most recent n samples are
// always readable as one contiguous run without wrap checks. A single
// cursor is shared by all queues and advanced once per Push.
//
// The window length n must be a power of two so the cursor advance is
// a mask; this is enforced by the constructor, never at push time.
//
// A QueueT is single-writer state: at most one goroutine may Push or
// Reset a given instance at a time.
type QueueT[F algofft.Float] struct {
	n     int
	mask  int
	count int
	xi    int
	data  []F
}

// Queue is the float64 specialization of QueueT.
type Queue = QueueT[float64]

// NewQueueT creates sample histories for count parallel filters of
// window length n. n must be a power of two.
func NewQueueT[F algofft.Float](n, count int) (*QueueT[F], error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQueueCount, count)
	}

	return &QueueT[F]{
		n:     n,
		mask:  n - 1,
		count: count,
		data:  make([]F, 2*n*count),
	}, nil
}

// NewQueue creates float64 sample histories (see NewQueueT).
func NewQueue(n, count int) (*Queue, error) {
	return NewQueueT[float64](n, count)
}

// Len returns the window length per queue.
func (q *QueueT[F]) Len() int { return q.n }

// Queues returns the number of independent histories.
func (q *QueueT[F]) Queues() int { return q.count }

// Push writes one new sample per queue and advances the shared cursor.
// Queue i reads its sample from in[i*stride], supporting interleaved
// multichannel buffers directly. Each sample is stored at both cursor
// offsets of its queue. Zero-alloc.
func (q *QueueT[F]) Push(in []F, stride int) {
	base := q.xi
	for i := range q.count {
		q.data[base] = in[i*stride]
		q.data[base+q.n] = in[i*stride]
		base += 2 * q.n
	}

	q.xi = (q.xi + 1) & q.mask
}

// Apply returns the dot product of taps against the n most recent
// samples of queue ch. taps[0] pairs with the newest sample, so for
// the symmetric taps produced by Design this is the filter output
// y[n] = sum h[k]*x[n-k]. len(taps) must equal Len(). Zero-alloc.
func (q *QueueT[F]) Apply(taps []F, ch int) F {
	win := q.data[ch*2*q.n+q.xi:]

	var y F
	for i, t := range taps[:q.n] {
		y += t * win[q.n-1-i]
	}

	return y
}

// ApplyParallel evaluates one tap row per queue, writing the output of
// queue i to out[i*stride]. len(taps) must equal Queues(). Zero-alloc.
func (q *QueueT[F]) ApplyParallel(taps [][]F, out []F, stride int) {
	for i := range q.count {
		out[i*stride] = q.Apply(taps[i], i)
	}
}

// Window copies the most recent n samples of queue ch into dst, newest
// first. dst must hold at least Len() samples.
func (q *QueueT[F]) Window(dst []F, ch int) {
	win := q.data[ch*2*q.n+q.xi:]
	for i := range q.n {
		dst[i] = win[q.n-1-i]
	}
}

// Reset clears all histories and rewinds the cursor.
func (q *QueueT[F]) Reset() {
	clear(q.data)
	q.xi = 0
}

// ApplyBank evaluates each sub-filter of bank against the
// corresponding queue, writing the output of row i to out[i*stride].
// The bank must have exactly q.Queues() rows of q.Len() taps.
func ApplyBank(q *Queue, bank *Bank, out []float64, stride int) {
	for i := range q.count {
		out[i*stride] = q.Apply(bank.Row(i), i)
	}
}
