package frame

import "errors"

// Errors returned by the frame slider.
var (
	ErrHopExceedsFrame = errors.New("frame: hop size exceeds frame size")
	ErrChunkLength     = errors.New("frame: chunk length mismatch")
)
