package design_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
	"github.com/cwbudde/algo-filter/dsp/filter/design"
)

func TestButterworthOrders(t *testing.T) {
	const (
		fc = 1000.0
		fs = 44100.0
	)

	for _, order := range []int{2, 4, 6} {
		coeffs, k, err := design.Butterworth(order, fc, fs, 1)
		require.NoError(t, err)
		require.Len(t, coeffs, order/2)

		for i := range coeffs {
			assert.True(t, coeffs[i].IsStable(), "order %d section %d", order, i)
		}

		chain := biquad.NewChain(coeffs, biquad.WithGain(k))

		// Unity at DC.
		dc := math.Abs(real(chain.Response(0, fs)))
		assert.InDelta(t, 1.0, dc, 1e-9, "order %d DC gain", order)

		// About -3 dB at the cutoff. The bilinear prewarp keeps the
		// cutoff pinned, so this holds for every order.
		atCut := 20 * math.Log10(cmplxAbs(chain.Response(fc, fs)))
		assert.InDelta(t, -3.01, atCut, 0.1, "order %d cutoff", order)

		// Well down an octave above the cutoff; steeper for higher
		// orders (about -6 dB per octave per pole).
		atOctave := 20 * math.Log10(cmplxAbs(chain.Response(2*fc, fs)))
		assert.Less(t, atOctave, -5.5*float64(order), "order %d octave", order)
	}
}

func TestButterworthMonotoneRolloff(t *testing.T) {
	coeffs, k, err := design.Butterworth(4, 1000, 44100, 1)
	require.NoError(t, err)

	chain := biquad.NewChain(coeffs, biquad.WithGain(k))

	prev := math.Inf(1)
	for _, f := range []float64{500, 1000, 2000, 4000, 8000, 16000} {
		mag := cmplxAbs(chain.Response(f, 44100))
		assert.Less(t, mag, prev, "response not monotone at %v Hz", f)
		prev = mag
	}
}

func TestButterworthUnsupportedOrder(t *testing.T) {
	for _, order := range []int{0, 1, 3, 5, 8} {
		_, _, err := design.Butterworth(order, 1000, 44100, 1)
		assert.ErrorIs(t, err, design.ErrUnsupportedOrder, "order %d", order)
	}
}

func TestButterworthInvalidArgs(t *testing.T) {
	_, _, err := design.Butterworth(2, -100, 44100, 1)
	assert.ErrorIs(t, err, design.ErrInvalidFrequency)

	_, _, err = design.Butterworth(2, 1000, 44100, 0.1)
	assert.ErrorIs(t, err, design.ErrQOutOfRange)
}

func cmplxAbs(h complex128) float64 {
	return math.Hypot(real(h), imag(h))
}
