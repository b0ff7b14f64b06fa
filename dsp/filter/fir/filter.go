package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// Filter implements a direct-form FIR filter for a single stream. The
// delay line stores every sample twice, half a buffer apart, so the
// history window is always one contiguous run and the inner loop needs
// no wrap check. Unlike Queue, any tap count is accepted.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return &Filter{
		coeffs: c,
		delay:  make([]float64, 2*len(coeffs)),
	}
}

// NewFromSpec designs the taps for spec and returns a filter applying
// them.
func NewFromSpec(spec Spec) (*Filter, error) {
	taps, err := Design(spec)
	if err != nil {
		return nil, err
	}

	return &Filter{
		coeffs: taps,
		delay:  make([]float64, 2*len(taps)),
	}, nil
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// Zero-alloc, identical results for any split of the input into calls.
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	f.delay[f.pos] = x
	f.delay[f.pos+n] = x

	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	// delay[pos : pos+n] now holds the window oldest to newest.
	win := f.delay[f.pos : f.pos+n]

	var y float64
	for k, c := range f.coeffs {
		y += c * win[n-1-k]
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	return c
}

// Response computes the complex frequency response H(e^{-jw}) at the
// given frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
