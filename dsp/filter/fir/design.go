package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/dsp/window"
)

// Kind selects the FIR response type.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Bandpass
	Bandstop
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return "unknown"
	}
}

// Spec describes a windowed-sinc FIR design.
//
// Cutoff frequencies are normalized so that 1.0 corresponds to the
// Nyquist frequency. A cutoff outside (0, 1] does not fail the design;
// it falls back to a quarter of the sample rate. Length and parity
// violations do fail.
type Spec struct {
	Kind   Kind
	Window window.Kind
	Length int

	// Cutoff is the edge frequency for Lowpass and Highpass, and the
	// lower band edge for Bandpass and Bandstop.
	Cutoff float64

	// CutoffHigh is the upper band edge for Bandpass and Bandstop.
	CutoffHigh float64

	// Beta is the Kaiser shape parameter; ignored for other windows.
	Beta float64
}

// defaultCutoff is the fallback internal cutoff (a quarter of the
// sample rate) used when a requested cutoff is outside (0, 1].
const defaultCutoff = 0.25

// clampCutoff halves a Nyquist-normalized cutoff so that 0.5
// corresponds to Nyquist internally, falling back to defaultCutoff for
// out-of-range requests.
func clampCutoff(fc float64) float64 {
	if fc > 0 && fc <= 1 {
		return fc / 2
	}

	return defaultCutoff
}

// Design computes the tap vector for the given spec using the window
// method: the ideal sinc response is truncated, multiplied by the
// window envelope, and normalized to unity gain at the reference
// frequency of the response kind (DC for Lowpass and Bandstop, Nyquist
// for Highpass, band center for Bandpass).
//
// The returned taps are symmetric: taps[i] == taps[n-1-i].
func Design(spec Spec) ([]float64, error) {
	n := spec.Length
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	if spec.Kind < Lowpass || spec.Kind > Bandstop {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
	}

	odd := n&1 == 1
	if (spec.Kind == Highpass || spec.Kind == Bandstop) && !odd {
		return nil, fmt.Errorf("%w: %s length %d", ErrEvenLength, spec.Kind, n)
	}

	w, err := window.Generate(spec.Window, n, spec.Beta)
	if err != nil {
		return nil, err
	}

	var g float64
	switch spec.Kind {
	case Lowpass, Highpass:
		g = synthesizePass(w, spec.Kind, clampCutoff(spec.Cutoff), odd)
	case Bandpass, Bandstop:
		g = synthesizeBand(w, spec.Kind, clampCutoff(spec.Cutoff), clampCutoff(spec.CutoffHigh), odd)
	}

	if g == 0 {
		return nil, fmt.Errorf("%w: %s length %d", ErrZeroGain, spec.Kind, n)
	}

	vecmath.ScaleBlock(w, w, 1/g)

	return w, nil
}

// synthesizePass overwrites the envelope w with windowed-sinc taps for
// a lowpass or highpass response and returns the accumulated
// normalization gain. fc is the internal cutoff (0.5 == Nyquist).
func synthesizePass(w []float64, kind Kind, fc float64, odd bool) float64 {
	n := len(w)
	end := halfLength(n, odd)
	k1 := 2 * math.Pi * fc
	k2 := evenShift(odd)

	var g float64

	if kind == Lowpass {
		if odd {
			// The exact-center tap is 2*fc*sin(x)/x at x=0, which the
			// sinc expression below cannot produce.
			w[end] = fc * w[end] * 2
			g = w[end]
		}

		for i := range end {
			t := float64(i+1) - k2
			v := w[end-i-1] * math.Sin(k1*t) / (math.Pi * t)
			w[end-i-1], w[n-end+i] = v, v
			g += 2 * v
		}

		return g
	}

	// Highpass: spectral inversion of the lowpass response. The gain
	// is the response at Nyquist, so the accumulation alternates sign.
	w[end] = 1 - fc*w[end]*2
	g = w[end]

	for i := range end {
		t := float64(i + 1)
		v := -w[end-i-1] * math.Sin(k1*t) / (math.Pi * t)
		w[end-i-1], w[n-end+i] = v, v

		if i&1 == 1 {
			g += 2 * v
		} else {
			g -= 2 * v
		}
	}

	return g
}

// synthesizeBand overwrites the envelope w with windowed-sinc taps for
// a bandpass or bandstop response, built as the difference of two
// sincs at the internal band edges fc1 < fc2.
func synthesizeBand(w []float64, kind Kind, fc1, fc2 float64, odd bool) float64 {
	n := len(w)
	end := halfLength(n, odd)
	k1 := 2 * math.Pi * fc1
	k3 := 2 * math.Pi * fc2
	k2 := evenShift(odd)

	var g float64

	if kind == Bandpass {
		if odd {
			// Gain is evaluated at the band center using the envelope
			// value before the center tap is overwritten.
			g = w[end] * (fc1 + fc2)
			w[end] = (fc2 - fc1) * w[end] * 2
		}

		for i := range end {
			t := float64(i+1) - k2
			t2 := math.Sin(k3*t) / (math.Pi * t)
			t3 := math.Sin(k1*t) / (math.Pi * t)
			g += w[end-i-1] * (t3 + t2)
			v := w[end-i-1] * (t2 - t3)
			w[end-i-1], w[n-end+i] = v, v
		}

		return g
	}

	// Bandstop: spectral inversion of the bandpass response,
	// normalized at DC.
	w[end] = 1 - (fc2-fc1)*w[end]*2
	g = w[end]

	for i := range end {
		t := float64(i + 1)
		t2 := math.Sin(k1*t) / (math.Pi * t)
		t3 := math.Sin(k3*t) / (math.Pi * t)
		v := w[end-i-1] * (t2 - t3)
		w[end-i-1], w[n-end+i] = v, v
		g += 2 * v
	}

	return g
}

func halfLength(n int, odd bool) int {
	end := (n + 1) >> 1
	if odd {
		end--
	}

	return end
}

// evenShift returns the half-sample offset applied to tap positions of
// even-length filters, whose symmetry axis falls between two taps.
func evenShift(odd bool) float64 {
	if odd {
		return 0
	}

	return 0.5
}
