package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
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

// ComplexBins is a read-only adapter for complex spectrum outputs.
//
// This allows integration with different FFT backends without coupling this
// package to any specific implementation.
type ComplexBins interface {
	Len() int
	At(i int) complex128
}

// SliceBins adapts a []complex128 as [ComplexBins].
type SliceBins []complex128

// Len returns the bin count.
func (s SliceBins) Len() int { return len(s) }

// At returns the bin value at index i.
func (s SliceBins) At(i int) complex128 { return s[i] }

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available.
// Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeInto(out, in)
	return out
}

// MagnitudeInto computes |X[k]| for each bin into dst.
//
// This is the zero-allocation path for callers with a pre-sized output
// buffer; dst and in must have the same length. Only min(len(dst),
// len(in)) bins are written when they differ.
func MagnitudeInto(dst []float64, in []complex128) {
	n := len(in)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}

	re, im, buf := getScratch(n)

	for i := range n {
		re[i] = real(in[i])
		im[i] = imag(in[i])
	}

	vecmath.Magnitude(dst[:n], re, im)
	putScratch(buf)
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// MagnitudeBins returns |X[k]| for each bin from a [ComplexBins] source.
func MagnitudeBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Abs(in.At(i))
	}
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	return PhaseBins(SliceBins(in))
}

// PhaseInto computes arg(X[k]) for each bin into dst.
//
// No pack backend offers a vectorised atan2, so this is a scalar loop.
func PhaseInto(dst []float64, in []complex128) {
	n := len(in)
	if len(dst) < n {
		n = len(dst)
	}
	for i := range n {
		dst[i] = math.Atan2(imag(in[i]), real(in[i]))
	}
}

// PhaseBins returns arg(X[k]) for each bin from a [ComplexBins] source.
func PhaseBins(in ComplexBins) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, in.Len())
	for i := range out {
		out[i] = cmplx.Phase(in.At(i))
	}
	return out
}

// MirrorMagnitude copies bins [1, N/2] of a real-input magnitude
// spectrum over the symmetric upper half, so that mag[i] == mag[N-i]
// for i above the Nyquist bin. Bins up to and including N/2 must
// already be populated.
func MirrorMagnitude(mag []float64) {
	n := len(mag)
	for i := n/2 + 1; i < n; i++ {
		mag[i] = mag[n-i]
	}
}

// Princarg wraps a phase value into the principal range (-pi, pi].
// It is idempotent: applying it to an already-wrapped value returns
// the value unchanged.
func Princarg(phase float64) float64 {
	for phase <= -math.Pi {
		phase += 2 * math.Pi
	}

	for phase > math.Pi {
		phase -= 2 * math.Pi
	}

	return phase
}
