// Package sequential provides sequential implementations of the functions
// provided by the parallel package. This is useful for testing, debugging, and
// as a baseline for measuring parallel speedups.
//
// It is not recommended to use the implementations of this package for any
// other purpose, because they are almost certainly too inefficient for
// regular sequential programs.
package sequential

import (
	"fmt"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/internal"
)

// Range receives a range, a batch count n, and a range function f, divides the
// range into batches, and invokes the range function for each of these batches
// sequentially, covering the half-open interval from low to high, including
// low but excluding high.
//
// The batches are the same as the ones parallel.Range would use.
//
// Range panics if high < low, or if n < 0.
func Range(low, high, n int, f forkjoin.RangeFunc) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			mid, half, ok := internal.Split(low, high, n)
			if !ok {
				f(low, high)
				return
			}
			recur(low, mid, half)
			recur(mid, high, n-half)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// For invokes body for each index in the half-open interval from low to high,
// in increasing order.
func For(low, high int, body func(i int)) {
	if high < low {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	for i := low; i < high; i++ {
		body(i)
	}
}

// RangeReduce receives a range, a batch count, a range reducer reduce, and a
// pair reducer join, divides the range into batches, and invokes the range
// reducer for each of these batches sequentially, covering the half-open
// interval from low to high, including low but excluding high. The results of
// the range reducer invocations are then combined by repeated invocations of
// the pair reducer, in the same association order as parallel.RangeReduce.
//
// RangeReduce panics if high < low, or if n < 0.
func RangeReduce[T any](
	low, high, n int,
	reduce func(low, high int) T,
	join func(x, y T) T,
) T {
	var recur func(int, int, int) T
	recur = func(low, high, n int) T {
		switch {
		case n == 1:
			return reduce(low, high)
		case n > 1:
			mid, half, ok := internal.Split(low, high, n)
			if !ok {
				return reduce(low, high)
			}
			left := recur(low, mid, half)
			right := recur(mid, high, n-half)
			return join(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
