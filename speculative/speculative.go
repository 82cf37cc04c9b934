/*
Package speculative provides functions for expressing parallel
algorithms, similar to the functions in package parallel, except that
the implementations here terminate early when they can.

RangeAnd terminates early as soon as any range predicate invoked in
parallel returns false.

Panics are handled similar to the functions in package parallel.
However, panics may not propagate to the invoking goroutine in case
it terminates early because of a known return value.

RangeAnd does not stop the execution of invoked functions that may
still be running in parallel in case of early termination. Predicates
that run long should poll some other safe form of communication to
stop gracefully; see IsSorted in package sort for an example.
*/
package speculative

import (
	"fmt"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/internal"
	"github.com/exascience/forkjoin/parallel"
)

/*
RangeAnd receives a range, a batch count, and a RangePredicate
function, divides the range into batches, and invokes the range
predicate for each of these batches in parallel.

The range is specified by a low and high integer, with low <=
high. The batches are determined by dividing up the size of the range
(high - low) by n. If n is 0, a reasonable default is used that takes
runtime.GOMAXPROCS(0) into account.

The range predicate is invoked for each batch in its own goroutine,
and RangeAnd returns true if all of them return true; or RangeAnd
returns false when at least one of them returns false, without waiting
for the other range predicates to terminate.

RangeAnd panics if high < low, or if n < 0.
*/
func RangeAnd(low, high, n int, f forkjoin.RangePredicate) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) bool {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			mid, half, ok := internal.Split(low, high, n)
			if !ok {
				return f(low, high)
			}
			var b1 bool
			wait := parallel.Spawn(func() { b1 = recur(mid, high, n-half) })
			if !recur(low, mid, half) {
				return false
			}
			wait()
			return b1
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
