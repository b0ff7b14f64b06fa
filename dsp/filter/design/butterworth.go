package design

import "github.com/cwbudde/algo-filter/dsp/filter/biquad"

// butterworthB1 lists the s-domain denominator linear coefficients of
// the normalized Butterworth polynomial factored into second-order
// sections: each section is s^2 + b1*s + 1.
var butterworthB1 = map[int][]float64{
	2: {1.4142135623730951},
	4: {0.765367, 1.847759},
	6: {0.5176387, 1.414214, 1.931852},
}

// Butterworth designs an even-order Butterworth lowpass as a cascade
// of biquad sections with cutoff fc at sample rate fs (Hz). The
// resonance q scales the damping of every section; q = 1 gives the
// maximally-flat response. It returns the section coefficients and
// the accumulated gain scalar that normalizes the cascade's DC gain
// to unity (install it as the chain gain). Supported orders are 2, 4
// and 6.
func Butterworth(order int, fc, fs, q float64) ([]biquad.Coefficients, float64, error) {
	b1s, ok := butterworthB1[order]
	if !ok {
		return nil, 0, ErrUnsupportedOrder
	}

	k := 1.0
	coeffs := make([]biquad.Coefficients, len(b1s))
	for i, b1 := range b1s {
		c, err := Transform(
			[3]float64{1, 0, 0},
			[3]float64{1, b1, 1},
			q, fc, fs, &k,
		)
		if err != nil {
			return nil, 0, err
		}
		coeffs[i] = c
	}

	return coeffs, k, nil
}
