package pure_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/on-the-ground/cauchy_ive_go/pure"
)

func naiveFib(n float64) float64 {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib func(float64) float64
	tableFib = pure.TableizeF1(func(n float64) float64 {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	}, 32)

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

func naiveDist(x1, y1, x2 float64) float64 {
	dx := x1 - x2
	return math.Sqrt(dx*dx + y1*y1)
}

func BenchmarkNaiveDist(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveDist(1.5, 2.5, 3.0)
	}
}

func BenchmarkTableizedDist(b *testing.B) {
	sizes := []uint32{2, 8, 32}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("TableSize_%d", size), func(b *testing.B) {
			dist := pure.TableizeF3(naiveDist, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = dist(1.5, 2.5, float64(i%int(size)))
			}
		})
	}
}
