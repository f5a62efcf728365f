package odf

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Transform is the forward DFT capability consumed by the engine:
// given frameSize complex samples it writes frameSize complex bins,
// standard DFT convention, no normalization.
//
// *algofft.Plan[complex128] satisfies it directly.
type Transform interface {
	Forward(dst, src []complex128) error
}

// TransformFactory builds a Transform for a given frame size. The
// engine calls it at construction and again on every reconfiguration
// that changes the frame size, so plan resources always match the
// current frame length.
type TransformFactory func(size int) (Transform, error)

func newPlanTransform(size int) (Transform, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("odf: failed to create FFT plan: %w", err)
	}

	return plan, nil
}
