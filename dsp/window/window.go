// Package window provides tap envelopes used to truncate ideal filter
// responses. Envelopes are pure functions of length and, for Kaiser,
// a shape parameter.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kind identifies a window function.
type Kind int

const (
	KindBoxcar Kind = iota
	KindTriangular
	KindHamming
	KindHanning
	KindBlackman
	KindFlatTop
	KindKaiser
)

// String returns the lowercase window name.
func (k Kind) String() string {
	switch k {
	case KindBoxcar:
		return "boxcar"
	case KindTriangular:
		return "triangular"
	case KindHamming:
		return "hamming"
	case KindHanning:
		return "hanning"
	case KindBlackman:
		return "blackman"
	case KindFlatTop:
		return "flat-top"
	case KindKaiser:
		return "kaiser"
	default:
		return "unknown"
	}
}

// Cosine-sum terms; the envelope is sum_k c[k]*cos(k * 2*pi*x).
var (
	hammingCoeffs  = []float64{0.54, -0.46}
	hanningCoeffs  = []float64{0.5, -0.5}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
	flatTopCoeffs  = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

// Generate returns symmetric window coefficients of the given length.
// beta is the shape parameter for Kaiser and is ignored otherwise.
func Generate(k Kind, length int, beta float64) ([]float64, error) {
	if err := validate(k, length, beta); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length)
		out[i] = evalWindow(k, x, beta)
	}

	return out, nil
}

// Boxcar returns an all-ones (rectangular) window.
func Boxcar(size int) ([]float64, error) {
	return Generate(KindBoxcar, size, 0)
}

// Triangular returns triangular window coefficients.
func Triangular(size int) ([]float64, error) {
	return Generate(KindTriangular, size, 0)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	return Generate(KindHamming, size, 0)
}

// Hanning returns Hann window coefficients.
func Hanning(size int) ([]float64, error) {
	return Generate(KindHanning, size, 0)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int) ([]float64, error) {
	return Generate(KindBlackman, size, 0)
}

// FlatTop returns 5-term flat-top window coefficients.
func FlatTop(size int) ([]float64, error) {
	return Generate(KindFlatTop, size, 0)
}

// Kaiser returns Kaiser window coefficients with shape parameter beta.
func Kaiser(size int, beta float64) ([]float64, error) {
	return Generate(KindKaiser, size, beta)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(k Kind, x, beta float64) float64 {
	switch k {
	case KindBoxcar:
		return 1
	case KindTriangular:
		return triangleAt(x)
	case KindHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case KindHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case KindBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case KindFlatTop:
		return cosineFromCoeffs(x, flatTopCoeffs)
	case KindKaiser:
		return kaiserAt(x, beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

func triangleAt(x float64) float64 {
	if x <= 0.5 {
		return 2 * x
	}

	return 2 * (1 - x)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
