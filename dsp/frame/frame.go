// Package frame maintains a sliding analysis frame over a sample
// stream delivered in fixed-size hop chunks. Consecutive frames overlap
// by frameSize - hopSize samples; a hop larger than the frame would
// skip samples and is rejected at construction.
package frame

import "fmt"

// Slider holds the most recent frameSize samples of a stream,
// advancing by hopSize samples per push. Not safe for concurrent use;
// one Slider per stream.
type Slider struct {
	samples []float64
	hopSize int
}

// NewSlider returns a zero-filled slider for the given frame and hop sizes.
func NewSlider(frameSize, hopSize int) (*Slider, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("frame: frame size must be > 0: %d", frameSize)
	}

	if hopSize <= 0 {
		return nil, fmt.Errorf("frame: hop size must be > 0: %d", hopSize)
	}

	if hopSize > frameSize {
		return nil, fmt.Errorf("%w: hop %d > frame %d", ErrHopExceedsFrame, hopSize, frameSize)
	}

	return &Slider{
		samples: make([]float64, frameSize),
		hopSize: hopSize,
	}, nil
}

// Push advances the frame by one hop: the oldest hopSize samples are
// discarded and chunk is appended at the end.
func (s *Slider) Push(chunk []float64) error {
	if len(chunk) != s.hopSize {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrChunkLength, s.hopSize, len(chunk))
	}

	copy(s.samples, s.samples[s.hopSize:])
	copy(s.samples[len(s.samples)-s.hopSize:], chunk)

	return nil
}

// Frame returns the current frame, most recent sample last. The slice
// is owned by the slider and overwritten by the next Push.
func (s *Slider) Frame() []float64 {
	return s.samples
}

// FrameSize returns the frame length in samples.
func (s *Slider) FrameSize() int {
	return len(s.samples)
}

// HopSize returns the advance per push in samples.
func (s *Slider) HopSize() int {
	return s.hopSize
}

// Overlap returns the number of samples shared by consecutive frames.
func (s *Slider) Overlap() int {
	return len(s.samples) - s.hopSize
}

// Reset zero-fills the frame.
func (s *Slider) Reset() {
	for i := range s.samples {
		s.samples[i] = 0
	}
}
