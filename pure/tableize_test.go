package pure_test

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/cauchy_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeF1(t *testing.T) {
	count := 0
	fn := pure.TableizeF1(func(a float64) float64 {
		count++
		return a * 2
	}, 2)

	assert.Equal(t, 4.0, fn(2))
	assert.Equal(t, 4.0, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeF2(t *testing.T) {
	count := 0
	fn := pure.TableizeF2(func(a, b float64) float64 {
		count++
		return a + b
	}, 2)

	assert.Equal(t, 5.0, fn(2, 3))
	assert.Equal(t, 5.0, fn(2, 3))
	assert.Equal(t, 1, count)

	// argument order is part of the key
	assert.Equal(t, 5.0, fn(3, 2))
	assert.Equal(t, 2, count)
}

func TestTableizeF3(t *testing.T) {
	count := 0
	fn := pure.TableizeF3(func(a, b, c float64) string {
		count++
		return "called"
	}, 4)

	assert.Equal(t, "called", fn(2, 3, 4))
	assert.Equal(t, "called", fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeF1_NaNArgumentIsOneKey(t *testing.T) {
	count := 0
	fn := pure.TableizeF1(func(a float64) float64 {
		count++
		return a
	}, 8)

	for i := 0; i < 10; i++ {
		assert.True(t, math.IsNaN(fn(math.NaN())))
	}
	// NaN with a different payload folds into the same key
	assert.True(t, math.IsNaN(fn(math.Float64frombits(0x7FF8_0000_0000_00FF))))
	assert.Equal(t, 1, count)
}

func TestTableizeF1_SignedZerosAreDistinctKeys(t *testing.T) {
	count := 0
	fn := pure.TableizeF1(func(a float64) bool {
		count++
		return math.Signbit(a)
	}, 8)

	assert.False(t, fn(0))
	assert.True(t, fn(math.Copysign(0, -1)))
	assert.Equal(t, 2, count)
}

func TestTableizeF1_Recursive(t *testing.T) {
	calls := 0
	var fib func(float64) float64
	fib = pure.TableizeF1(func(n float64) float64 {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, 1024)

	assert.Equal(t, 6765.0, fib(20))
	assert.Equal(t, 21, calls)
}

func TestTableizeF1_ConcurrentCallers(t *testing.T) {
	var calls atomic.Int64
	fn := pure.TableizeF1(func(a float64) float64 {
		calls.Add(1)
		return a * a
	}, 1024)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				x := float64(i % 16)
				if got := fn(x); got != x*x {
					t.Errorf("fn(%v) = %v, want %v", x, got, x*x)
				}
			}
		}()
	}
	wg.Wait()

	// every distinct key is computed at least once; concurrent misses may repeat
	assert.GreaterOrEqual(t, calls.Load(), int64(16))
	assert.Less(t, calls.Load(), int64(8*1000))
}

func TestTableizeWithPanicOnZeroTableSize(t *testing.T) {
	assert.Panics(t, func() {
		pure.TableizeF1(func(a float64) float64 { return a }, 0)
	})
}
