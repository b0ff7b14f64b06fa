package design

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
)

// Prewarp compensates for the frequency-axis compression of the
// bilinear transform by scaling the s-domain polynomial so that the
// analog cutoff fc maps exactly onto the same digital frequency.
// c holds {a0, a1, a2} for a0 + a1*s + a2*s^2 and is modified in
// place; fc and fs are in Hz.
func Prewarp(c *[3]float64, fc, fs float64) {
	wp := 2 * fs * math.Tan(math.Pi*fc/fs)
	c[2] /= wp * wp
	c[1] /= wp
}

// Bilinear maps one prewarped analog section
//
//	H(s) = (a0 + a1*s + a2*s^2) / (b0 + b1*s + b2*s^2)
//
// into digital biquad coefficients via s = 2*fs*(1-z^-1)/(1+z^-1).
// The numerator is left monic (B0 = 1); the section's true gain ratio
// is multiplied into *k instead, so a cascade accumulates a single
// normalization scalar across all of its sections.
func Bilinear(num, den [3]float64, k *float64, fs float64) biquad.Coefficients {
	ad := 4*num[2]*fs*fs + 2*num[1]*fs + num[0]
	bd := 4*den[2]*fs*fs + 2*den[1]*fs + den[0]

	*k *= ad / bd

	return biquad.Coefficients{
		B0: 1,
		B1: (2*num[0] - 8*num[2]*fs*fs) / ad,
		B2: (4*num[2]*fs*fs - 2*num[1]*fs + num[0]) / ad,
		A1: (2*den[0] - 8*den[2]*fs*fs) / bd,
		A2: (4*den[2]*fs*fs - 2*den[1]*fs + den[0]) / bd,
	}
}

// Transform designs one digital biquad section from an analog
// prototype. num and den hold {a0, a1, a2} of the s-domain numerator
// and denominator; q is the resonance applied to the denominator's
// linear term, fc the cutoff and fs the sample rate in Hz. The gain
// accumulator k must be initialized to 1 before the first section of
// a cascade.
func Transform(num, den [3]float64, q, fc, fs float64, k *float64) (biquad.Coefficients, error) {
	if k == nil {
		return biquad.Coefficients{}, ErrNilAccumulator
	}
	if q < QMin || q > QMax {
		return biquad.Coefficients{}, ErrQOutOfRange
	}
	if fc <= 0 || fs <= 0 {
		return biquad.Coefficients{}, ErrInvalidFrequency
	}

	den[1] /= q

	Prewarp(&num, fc, fs)
	Prewarp(&den, fc, fs)

	return Bilinear(num, den, k, fs), nil
}
