// Package internal holds helpers shared by the parallel, sequential, and
// speculative packages.
package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account. The result
// never exceeds the size of a non-empty range, and is 1 for an empty range.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// Split returns the point at which a range of n batches is divided into a
// left part of n/2 batches and a right part of n-n/2 batches. ok is false if
// the left part would cover the whole range.
func Split(low, high, n int) (mid, half int, ok bool) {
	batchSize := ((high - low - 1) / n) + 1
	half = n / 2
	mid = low + batchSize*half
	return mid, half, mid < high
}

// WrapPanic adds stack trace information to a recovered panic. Errors stay
// errors, so errors.Is and errors.As still see the original value.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
