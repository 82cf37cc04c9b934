/*
Package sort provides a fork-join parallel quicksort and a parallel
sortedness check.
*/
package sort

import (
	"errors"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/exascience/forkjoin/speculative"
)

// ErrInvalidRange is the error SortRange panics with, wrapped with the
// offending bounds, when the range does not lie within the slice.
var ErrInvalidRange = errors.New("sort: invalid range")

const checkGrainSize = 0x500

/*
IsSorted determines in parallel whether s is sorted in increasing
order. It attempts to terminate early when the return value is false.
*/
func IsSorted[E constraints.Ordered](s []E) bool {
	size := len(s)
	if size < checkGrainSize {
		for i := 1; i < size; i++ {
			if s[i] < s[i-1] {
				return false
			}
		}
		return true
	}
	var done atomic.Bool
	defer done.Store(true)
	return speculative.RangeAnd(1, size, 0, func(low, high int) bool {
		for i := low; i < high; i++ {
			if ((i % 1024) == 0) && done.Load() {
				return false
			}
			if s[i] < s[i-1] {
				return false
			}
		}
		return true
	})
}
