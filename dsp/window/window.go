// Package window generates the analysis window functions used by the
// onset detection front-end. Coefficients are symmetric (N = size-1
// denominator) so that a frame centred on a transient stays centred
// after windowing.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kind identifies a window function.
type Kind int

const (
	KindRectangular Kind = iota
	KindHanning
	KindHamming
	KindBlackman
	KindTukey
)

// tukeyAlpha is the taper ratio of the Tukey window: the outer alpha
// fraction of the frame is cosine-tapered, the rest is flat.
const tukeyAlpha = 0.5

// String returns the canonical lower-case name of the window kind.
func (k Kind) String() string {
	switch k {
	case KindRectangular:
		return "rectangular"
	case KindHanning:
		return "hanning"
	case KindHamming:
		return "hamming"
	case KindBlackman:
		return "blackman"
	case KindTukey:
		return "tukey"
	default:
		return "unknown"
	}
}

// KindFromString resolves a window name to its Kind.
func KindFromString(name string) (Kind, bool) {
	switch name {
	case "rectangular":
		return KindRectangular, true
	case "hanning", "hann":
		return KindHanning, true
	case "hamming":
		return KindHamming, true
	case "blackman":
		return KindBlackman, true
	case "tukey":
		return KindTukey, true
	}

	return KindHanning, false
}

// Kinds returns all window kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindRectangular, KindHanning, KindHamming, KindBlackman, KindTukey}
}

// Generate returns window coefficients of the given length.
//
// An unrecognized kind falls back to Hanning; this is a documented
// default rather than an error, so forward-incompatible configuration
// degrades to the stock analysis window instead of failing.
func Generate(k Kind, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)

	switch k {
	case KindRectangular:
		generateRectangular(out)
	case KindHamming:
		generateHamming(out)
	case KindBlackman:
		generateBlackman(out)
	case KindTukey:
		generateTukey(out, tukeyAlpha)
	default:
		generateHanning(out)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(k Kind, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(k, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)
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

// Rectangular returns rectangular window coefficients.
func Rectangular(size int) ([]float64, error) {
	return Generate(KindRectangular, size), validateLength(size)
}

// Hanning returns Hanning window coefficients.
func Hanning(size int) ([]float64, error) {
	return Generate(KindHanning, size), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	return Generate(KindHamming, size), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int) ([]float64, error) {
	return Generate(KindBlackman, size), validateLength(size)
}

// Tukey returns Tukey window coefficients with the default taper ratio.
func Tukey(size int) ([]float64, error) {
	return Generate(KindTukey, size), validateLength(size)
}

func generateRectangular(out []float64) {
	for n := range out {
		out[n] = 1.0
	}
}

func generateHanning(out []float64) {
	N := float64(len(out) - 1)
	for n := range out {
		out[n] = 0.5 * (1 - math.Cos(2*math.Pi*(float64(n)/N)))
	}
}

func generateHamming(out []float64) {
	N := float64(len(out) - 1)
	for n := range out {
		out[n] = 0.54 - 0.46*math.Cos(2*math.Pi*(float64(n)/N))
	}
}

func generateBlackman(out []float64) {
	N := float64(len(out) - 1)
	for n := range out {
		arg := 2 * math.Pi * (float64(n) / N)
		out[n] = 0.42 - 0.5*math.Cos(arg) + 0.08*math.Cos(2*arg)
	}
}

// generateTukey evaluates the Tukey window over a centred index running
// from -(size/2)+1 to size/2: flat over the central 1-alpha fraction,
// cosine taper to zero on either side.
func generateTukey(out []float64, alpha float64) {
	N := float64(len(out) - 1)
	nVal := float64(-(len(out) / 2)) + 1

	for n := range out {
		switch {
		case nVal >= 0 && nVal <= alpha*(N/2):
			out[n] = 1.0
		case nVal <= 0 && nVal >= -alpha*(N/2):
			out[n] = 1.0
		default:
			out[n] = 0.5 * (1 + math.Cos(math.Pi*((2*nVal)/(alpha*N)-1)))
		}

		nVal++
	}
}
