package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// ResponseFromTaps zero-pads an FIR tap set into an fftSize-point
// frame and returns its complex spectrum, i.e. the frequency response
// sampled at fftSize uniformly spaced points on the unit circle.
// fftSize must be a power of two and at least len(taps).
func ResponseFromTaps(taps []float64, fftSize int) ([]complex128, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("spectrum: empty tap set")
	}
	if fftSize < len(taps) {
		return nil, fmt.Errorf("spectrum: fft size %d smaller than tap count %d", fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	src := make([]complex128, fftSize)
	for i, t := range taps {
		src[i] = complex(t, 0)
	}

	dst := make([]complex128, fftSize)
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	return dst, nil
}

// MagnitudeFromTaps returns |H| for an FIR tap set over the first
// fftSize/2+1 bins, covering DC through Nyquist. Bin k corresponds to
// the normalized frequency k/fftSize in cycles per sample.
func MagnitudeFromTaps(taps []float64, fftSize int) ([]float64, error) {
	bins, err := ResponseFromTaps(taps, fftSize)
	if err != nil {
		return nil, err
	}

	return Magnitude(bins[:fftSize/2+1]), nil
}

// MagnitudeDBFromTaps returns 20*log10|H| over DC through Nyquist.
func MagnitudeDBFromTaps(taps []float64, fftSize int) ([]float64, error) {
	mag, err := MagnitudeFromTaps(taps, fftSize)
	if err != nil {
		return nil, err
	}

	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}

	return mag, nil
}
