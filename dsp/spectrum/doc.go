// Package spectrum provides FFT-adjacent spectrum-domain utilities for
// the onset detection front-end.
//
// The package intentionally does not implement FFT itself. It operates
// on complex spectrum bins produced by external FFT backends and
// provides magnitude and phase extraction, symmetric-bin mirroring, and
// principal-argument phase wrapping.
package spectrum
