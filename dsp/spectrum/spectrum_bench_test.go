package spectrum

import "testing"

func BenchmarkMagnitudeInto(b *testing.B) {
	sizes := []int{256, 1024, 4096}
	for _, n := range sizes {
		bins := make([]complex128, n)
		for i := range bins {
			bins[i] = complex(float64(i), float64(n-i))
		}
		dst := make([]float64, n)

		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				MagnitudeInto(dst, bins)
			}
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
