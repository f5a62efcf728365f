package frame

import (
	"errors"
	"testing"
)

// --- construction and validation ---

func TestNewSliderValidation(t *testing.T) {
	cases := []struct {
		name      string
		frameSize int
		hopSize   int
	}{
		{"zero frame", 0, 1},
		{"negative frame", -8, 4},
		{"zero hop", 8, 0},
		{"negative hop", 8, -4},
		{"hop exceeds frame", 8, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSlider(tc.frameSize, tc.hopSize); err == nil {
				t.Fatalf("expected error for frame=%d hop=%d", tc.frameSize, tc.hopSize)
			}
		})
	}
}

func TestNewSliderHopExceedsFrameSentinel(t *testing.T) {
	_, err := NewSlider(8, 16)
	if !errors.Is(err, ErrHopExceedsFrame) {
		t.Fatalf("got %v, want ErrHopExceedsFrame", err)
	}
}

func TestNewSliderDefaults(t *testing.T) {
	s, err := NewSlider(16, 4)
	if err != nil {
		t.Fatal(err)
	}

	if s.FrameSize() != 16 || s.HopSize() != 4 || s.Overlap() != 12 {
		t.Fatalf("frame=%d hop=%d overlap=%d, want 16 4 12", s.FrameSize(), s.HopSize(), s.Overlap())
	}

	for i, v := range s.Frame() {
		if v != 0 {
			t.Fatalf("frame[%d]=%v, want zero-filled", i, v)
		}
	}
}

// --- push semantics ---

func TestPushChunkLength(t *testing.T) {
	s, err := NewSlider(8, 4)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Push([]float64{1, 2, 3}); !errors.Is(err, ErrChunkLength) {
		t.Fatalf("got %v, want ErrChunkLength", err)
	}

	if err := s.Push([]float64{1, 2, 3, 4, 5}); !errors.Is(err, ErrChunkLength) {
		t.Fatalf("got %v, want ErrChunkLength", err)
	}
}

func TestPushOverlap(t *testing.T) {
	s, err := NewSlider(8, 4)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Push([]float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	if err := s.Push([]float64{5, 6, 7, 8}); err != nil {
		t.Fatal(err)
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	for i, v := range s.Frame() {
		if v != want[i] {
			t.Fatalf("frame[%d]=%v, want %v", i, v, want[i])
		}
	}

	if err := s.Push([]float64{9, 10, 11, 12}); err != nil {
		t.Fatal(err)
	}

	want = []float64{5, 6, 7, 8, 9, 10, 11, 12}
	for i, v := range s.Frame() {
		if v != want[i] {
			t.Fatalf("frame[%d]=%v, want %v", i, v, want[i])
		}
	}
}

// After N pushes covering at least one full frame, the frame equals the
// trailing frameSize samples of the concatenated chunks.
func TestPushTrailingSamplesProperty(t *testing.T) {
	const (
		frameSize = 12
		hopSize   = 5
		pushes    = 7
	)

	s, err := NewSlider(frameSize, hopSize)
	if err != nil {
		t.Fatal(err)
	}

	var stream []float64

	for n := range pushes {
		chunk := make([]float64, hopSize)
		for i := range chunk {
			chunk[i] = float64(n*hopSize + i)
		}

		stream = append(stream, chunk...)

		if err := s.Push(chunk); err != nil {
			t.Fatal(err)
		}
	}

	tail := stream[len(stream)-frameSize:]
	for i, v := range s.Frame() {
		if v != tail[i] {
			t.Fatalf("frame[%d]=%v, want trailing sample %v", i, v, tail[i])
		}
	}
}

func TestPushHopEqualsFrame(t *testing.T) {
	s, err := NewSlider(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Push([]float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	want := []float64{1, 2, 3, 4}
	for i, v := range s.Frame() {
		if v != want[i] {
			t.Fatalf("frame[%d]=%v, want %v", i, v, want[i])
		}
	}
}

// --- reset ---

func TestReset(t *testing.T) {
	s, err := NewSlider(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Push([]float64{1, 2}); err != nil {
		t.Fatal(err)
	}

	s.Reset()

	for i, v := range s.Frame() {
		if v != 0 {
			t.Fatalf("frame[%d]=%v after Reset, want 0", i, v)
		}
	}
}
