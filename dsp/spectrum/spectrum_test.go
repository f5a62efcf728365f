package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("Magnitude[1]=%f want=sqrt(2)", mag[1])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestMagnitudeIntoMatchesMagnitude(t *testing.T) {
	bins := make([]complex128, 33)
	for i := range bins {
		bins[i] = complex(float64(i)-7, float64(33-i))
	}

	want := Magnitude(bins)

	dst := make([]float64, len(bins))
	MagnitudeInto(dst, bins)

	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %f want %f", i, dst[i], want[i])
		}
	}
}

func TestPhaseIntoMatchesPhase(t *testing.T) {
	bins := []complex128{1, 1i, -1, -1i, 1 + 1i}

	want := Phase(bins)

	dst := make([]float64, len(bins))
	PhaseInto(dst, bins)

	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %f want %f", i, dst[i], want[i])
		}
	}
}

func TestComplexBinsAdapter(t *testing.T) {
	bins := SliceBins([]complex128{1 + 0i, 0 + 2i})

	mag := MagnitudeBins(bins)
	if len(mag) != 2 || math.Abs(mag[0]-1) > 1e-12 || math.Abs(mag[1]-2) > 1e-12 {
		t.Fatalf("unexpected MagnitudeBins output: %v", mag)
	}
}

func TestMirrorMagnitude(t *testing.T) {
	// even length: bins 0..4 populated, 5..7 mirrored from 3..1
	mag := []float64{9, 1, 2, 3, 4, 0, 0, 0}
	MirrorMagnitude(mag)

	want := []float64{9, 1, 2, 3, 4, 3, 2, 1}
	for i := range want {
		if mag[i] != want[i] {
			t.Fatalf("mag[%d]=%v, want %v", i, mag[i], want[i])
		}
	}
}

func TestMirrorMagnitudeSymmetryProperty(t *testing.T) {
	const n = 16

	mag := make([]float64, n)
	for i := 0; i <= n/2; i++ {
		mag[i] = float64(i * i)
	}

	MirrorMagnitude(mag)

	for i := n/2 + 1; i < n; i++ {
		if mag[i] != mag[n-i] {
			t.Fatalf("mag[%d]=%v mag[%d]=%v, want symmetric", i, mag[i], n-i, mag[n-i])
		}
	}
}

// --- princarg ---

func TestPrincargRange(t *testing.T) {
	inputs := []float64{0, 1, -1, math.Pi, -math.Pi, 4, -4, 10, -10, 100.5, -100.5}

	for _, v := range inputs {
		got := Princarg(v)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("Princarg(%v)=%v outside (-pi, pi]", v, got)
		}
	}
}

func TestPrincargIdentityInRange(t *testing.T) {
	inputs := []float64{0, 0.5, -0.5, 3, -3, math.Pi}

	for _, v := range inputs {
		if got := Princarg(v); got != v {
			t.Fatalf("Princarg(%v)=%v, want unchanged", v, got)
		}
	}
}

func TestPrincargIdempotent(t *testing.T) {
	inputs := []float64{7.5, -7.5, 42, -42, 3 * math.Pi}

	for _, v := range inputs {
		once := Princarg(v)
		twice := Princarg(once)

		if once != twice {
			t.Fatalf("Princarg not idempotent for %v: %v then %v", v, once, twice)
		}
	}
}

func TestPrincargWrap(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{math.Pi + 0.5, -math.Pi + 0.5},
		{-math.Pi, math.Pi}, // boundary: -pi maps to +pi
	}

	for _, tc := range cases {
		got := Princarg(tc.in)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Princarg(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
