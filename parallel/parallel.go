// Package parallel provides the fork-join substrate used by the reduce and
// sort packages: spawning work, waiting for it, and parallel iteration over
// ranges.
//
// Every function in this package that runs work in other goroutines recovers
// panics in those goroutines and re-raises them in the goroutine that waits
// for the work, with stack trace information added.
package parallel

import (
	"fmt"
	"sync"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/internal"
)

// Spawn starts thunk in its own goroutine and returns immediately. The
// returned wait function blocks until thunk has terminated. It is the only
// point at which the spawning goroutine synchronizes with thunk: writes made
// by thunk happen before wait returns.
//
// If thunk panics, the panic is recovered and wait panics with the recovered
// value.
func Spawn(thunk forkjoin.Thunk) (wait func()) {
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		thunk()
	}()
	return func() {
		wg.Wait()
		if p != nil {
			panic(p)
		}
	}
}

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when all
// thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the panics,
// and Do eventually panics with the left-most recovered panic value.
func Do(thunks ...forkjoin.Thunk) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var wait func()
	switch len(thunks) {
	case 2:
		wait = Spawn(thunks[1])
		thunks[0]()
	default:
		half := len(thunks) / 2
		wait = Spawn(func() { Do(thunks[half:]...) })
		Do(thunks[:half]...)
	}
	wait()
}

// Range receives a range, a batch count n, and a range function f, divides the
// range into batches, and invokes the range function for each of these batches
// in parallel, covering the half-open interval from low to high, including low
// but excluding high.
//
// The range is specified by a low and high integer, with low <= high. The
// batches are determined by dividing up the size of the range (high - low) by
// n. If n is 0, a reasonable default is used that takes runtime.GOMAXPROCS(0)
// into account.
//
// The range function is invoked for each batch in its own goroutine, with 0 <=
// low <= high, and Range returns only when all range functions have
// terminated.
//
// Range panics if high < low, or if n < 0.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with the
// left-most recovered panic value.
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
			wait := Spawn(func() { recur(mid, high, n-half) })
			recur(low, mid, half)
			wait()
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// For invokes body for each index in the half-open interval from low to high,
// in parallel. The indices are grouped into batches as described for Range.
// For returns only when all invocations of body have terminated.
func For(low, high, n int, body func(i int)) {
	Range(low, high, n, func(low, high int) {
		for i := low; i < high; i++ {
			body(i)
		}
	})
}

// RangeReduce receives a range, a batch count, a range reducer reduce, and a
// pair reducer join, divides the range into batches, and invokes the range
// reducer for each of these batches in parallel, covering the half-open
// interval from low to high, including low but excluding high. The results of
// the range reducer invocations are then combined by repeated invocations of
// the pair reducer.
//
// The pair reducer always receives the result for the lower part of the range
// as x, and the result for the upper part as y, so join only needs to be
// associative, not commutative.
//
// RangeReduce panics if high < low, or if n < 0.
//
// If one or more reducer invocations panic, the corresponding goroutines
// recover the panics, and RangeReduce eventually panics with the left-most
// recovered panic value.
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
			var right T
			wait := Spawn(func() { right = recur(mid, high, n-half) })
			left := recur(low, mid, half)
			wait()
			return join(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
