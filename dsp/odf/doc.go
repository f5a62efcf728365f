// Package odf computes onset detection functions over a stream of
// audio samples delivered in fixed-size hop chunks.
//
// A [Function] maintains a sliding analysis frame and, per call,
// reduces the frame to one scalar whose peaks indicate likely onsets of
// acoustic events. Ten metric variants are available, covering
// time-domain energy measures, magnitude-spectrum differences, phase
// deviation, and complex-domain distances:
//
//	f, err := odf.New(512, 1024)
//	for chunk := range chunks {
//		sample, err := f.ProcessSample(chunk)
//		...
//	}
//
// Spectral metrics window the frame, rotate it by half a frame so a
// transient at the frame centre yields zero phase at bin 0, and run a
// forward FFT. The FFT plan is created at construction and rebuilt on
// [Function.Reconfigure]; tests can substitute the backend via
// [WithTransform].
//
// One Function tracks one stream: every call mutates the history the
// next call depends on, so calls must be strictly sequential. Distinct
// Functions share no state and may run on separate goroutines.
//
// Thresholding and peak-picking over the returned series are downstream
// concerns, as are tempo induction and beat prediction.
package odf
