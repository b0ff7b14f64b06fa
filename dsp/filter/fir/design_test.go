package fir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/window"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func sumTaps(taps []float64) float64 {
	s := 0.0
	for _, v := range taps {
		s += v
	}
	return s
}

func alternatingSum(taps []float64) float64 {
	s := 0.0
	for i, v := range taps {
		if i&1 == 1 {
			s -= v
		} else {
			s += v
		}
	}
	return s
}

func requireSymmetric(t *testing.T, taps []float64) {
	t.Helper()
	n := len(taps)
	for i := range n / 2 {
		if !almostEqual(taps[i], taps[n-1-i], 1e-12) {
			t.Fatalf("taps[%d]=%v != taps[%d]=%v", i, taps[i], n-1-i, taps[n-1-i])
		}
	}
}

// magnitudeAt evaluates |H| at a Nyquist-normalized frequency f (1.0
// corresponds to Fs/2).
func magnitudeAt(taps []float64, f float64) float64 {
	var h complex128
	for k, c := range taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -math.Pi*f*float64(k)))
	}
	return cmplx.Abs(h)
}

func TestDesign_LowpassHamming31(t *testing.T) {
	taps, err := Design(Spec{Kind: Lowpass, Window: window.KindHamming, Length: 31, Cutoff: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if len(taps) != 31 {
		t.Fatalf("got %d taps, want 31", len(taps))
	}
	testutil.RequireFinite(t, taps)
	requireSymmetric(t, taps)
	if !almostEqual(sumTaps(taps), 1, 1e-6) {
		t.Errorf("DC gain = %v, want 1", sumTaps(taps))
	}
}

func TestDesign_LowpassEvenLength(t *testing.T) {
	taps, err := Design(Spec{Kind: Lowpass, Window: window.KindHanning, Length: 32, Cutoff: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	requireSymmetric(t, taps)
	if !almostEqual(sumTaps(taps), 1, 1e-6) {
		t.Errorf("DC gain = %v, want 1", sumTaps(taps))
	}
}

func TestDesign_HighpassNyquistGain(t *testing.T) {
	taps, err := Design(Spec{Kind: Highpass, Window: window.KindHamming, Length: 31, Cutoff: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	requireSymmetric(t, taps)
	if !almostEqual(math.Abs(alternatingSum(taps)), 1, 1e-6) {
		t.Errorf("Nyquist gain = %v, want magnitude 1", alternatingSum(taps))
	}
	// A highpass passes little at DC.
	if dc := math.Abs(sumTaps(taps)); dc > 0.05 {
		t.Errorf("DC leakage = %v, want < 0.05", dc)
	}
}

func TestDesign_BandpassCenterGain(t *testing.T) {
	taps, err := Design(Spec{Kind: Bandpass, Window: window.KindHamming, Length: 31, Cutoff: 0.2, CutoffHigh: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	requireSymmetric(t, taps)
	if got := magnitudeAt(taps, 0.3); !almostEqual(got, 1, 0.05) {
		t.Errorf("band-center gain = %v, want ~1", got)
	}
	if got := magnitudeAt(taps, 0); got > 0.05 {
		t.Errorf("DC leakage = %v, want < 0.05", got)
	}
	if got := magnitudeAt(taps, 0.8); got > 0.05 {
		t.Errorf("stopband leakage = %v, want < 0.05", got)
	}
}

func TestDesign_BandstopDCGain(t *testing.T) {
	taps, err := Design(Spec{Kind: Bandstop, Window: window.KindHamming, Length: 31, Cutoff: 0.2, CutoffHigh: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	requireSymmetric(t, taps)
	if !almostEqual(sumTaps(taps), 1, 1e-6) {
		t.Errorf("DC gain = %v, want 1", sumTaps(taps))
	}
	if got := magnitudeAt(taps, 0.3); got > 0.05 {
		t.Errorf("notch leakage = %v, want < 0.05", got)
	}
}

func TestDesign_ParityViolation(t *testing.T) {
	for _, kind := range []Kind{Highpass, Bandstop} {
		for _, wk := range []window.Kind{window.KindBoxcar, window.KindHamming, window.KindBlackman} {
			_, err := Design(Spec{Kind: kind, Window: wk, Length: 30, Cutoff: 0.25, CutoffHigh: 0.5})
			if !errors.Is(err, ErrEvenLength) {
				t.Errorf("%v/%v even length: got %v, want ErrEvenLength", kind, wk, err)
			}
		}
	}
}

func TestDesign_CutoffClampsToDefault(t *testing.T) {
	// Out-of-range cutoffs fall back to a quarter of the sample rate,
	// which equals an in-range request of 0.5.
	ref, err := Design(Spec{Kind: Lowpass, Window: window.KindHamming, Length: 31, Cutoff: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for _, fc := range []float64{0, -0.1, 1.5} {
		got, err := Design(Spec{Kind: Lowpass, Window: window.KindHamming, Length: 31, Cutoff: fc})
		if err != nil {
			t.Fatalf("fc=%v: %v", fc, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, ref, 0)
	}
}

func TestDesign_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := Design(Spec{Kind: Lowpass, Window: window.KindHamming, Length: n, Cutoff: 0.25}); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("length %d: got %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestDesign_UnknownKind(t *testing.T) {
	if _, err := Design(Spec{Kind: Kind(7), Window: window.KindHamming, Length: 31, Cutoff: 0.25}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestDesign_UnknownWindow(t *testing.T) {
	if _, err := Design(Spec{Kind: Lowpass, Window: window.Kind(42), Length: 31, Cutoff: 0.25}); !errors.Is(err, window.ErrUnknownKind) {
		t.Errorf("got %v, want window.ErrUnknownKind", err)
	}
}

func TestDesign_DegenerateFilter(t *testing.T) {
	// A triangular window of length 1 is zero at its only sample, so the
	// center tap and with it the normalization gain are exactly zero.
	_, err := Design(Spec{Kind: Lowpass, Window: window.KindTriangular, Length: 1, Cutoff: 0.5})
	if !errors.Is(err, ErrZeroGain) {
		t.Errorf("got %v, want ErrZeroGain", err)
	}
}

func TestDesign_CoincidentBandEdges(t *testing.T) {
	// Coincident band edges cancel every tap (the two sincs are
	// identical), but the band-center gain accumulator stays nonzero, so
	// the design succeeds and yields the zero filter.
	taps, err := Design(Spec{Kind: Bandpass, Window: window.KindHamming, Length: 8, Cutoff: 0.4, CutoffHigh: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range taps {
		if v != 0 {
			t.Errorf("taps[%d] = %v, want 0", i, v)
		}
	}
}

func TestDesign_KaiserBetaShapesStopband(t *testing.T) {
	narrow, err := Design(Spec{Kind: Lowpass, Window: window.KindKaiser, Length: 63, Cutoff: 0.25, Beta: 2})
	if err != nil {
		t.Fatal(err)
	}
	steep, err := Design(Spec{Kind: Lowpass, Window: window.KindKaiser, Length: 63, Cutoff: 0.25, Beta: 9})
	if err != nil {
		t.Fatal(err)
	}
	// Larger beta trades transition width for stopband rejection.
	if magnitudeAt(steep, 0.8) >= magnitudeAt(narrow, 0.8) {
		t.Errorf("beta=9 stopband %v not below beta=2 stopband %v",
			magnitudeAt(steep, 0.8), magnitudeAt(narrow, 0.8))
	}
}
