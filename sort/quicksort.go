package sort

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/exascience/forkjoin/parallel"
)

// spawn starts the sort of a left partition.
var spawn = parallel.Spawn

/*
Sort sorts s in increasing order, in place, with a fork-join
quicksort.

Each step picks the last element as pivot, partitions the remaining
elements into the ones less than the pivot followed by the ones greater
than or equal to it in a single scan, and swaps the pivot between
them. The left partition is then sorted in a spawned goroutine while
the current goroutine continues with the right partition, and Sort
waits for the spawned goroutine before returning.

The pivot is not randomized. Input that is already sorted, reverse
sorted, or consists of equal elements degrades to quadratic work and
recursion as deep as the input is long; use SortGrain to bound the
number of goroutines for such input.
*/
func Sort[E constraints.Ordered](s []E) {
	forkJoinSort(s, 2)
}

/*
SortRange sorts the half-open interval of s from begin to end, in
place, as described for Sort. Elements outside of the interval are not
touched.

SortRange panics with an error wrapping ErrInvalidRange if begin < 0,
end < begin, or end > len(s).
*/
func SortRange[E constraints.Ordered](s []E, begin, end int) {
	if begin < 0 || end < begin || end > len(s) {
		panic(fmt.Errorf("%w: %v:%v for length %v", ErrInvalidRange, begin, end, len(s)))
	}
	forkJoinSort(s[begin:end:end], 2)
}

/*
SortGrain sorts s like Sort, except that partitions with fewer than
grain elements are sorted in the current goroutine without spawning.
A grain below 2 is treated as 2.
*/
func SortGrain[E constraints.Ordered](s []E, grain int) {
	if grain < 2 {
		grain = 2
	}
	forkJoinSort(s, grain)
}

// partition moves the elements of s[:len(s)-1] that are less than the last
// element in front of the others, swaps the last element into the boundary,
// and returns the boundary.
func partition[E constraints.Ordered](s []E) int {
	last := len(s) - 1
	pivot := s[last]
	middle := 0
	for i := 0; i < last; i++ {
		if s[i] < pivot {
			s[i], s[middle] = s[middle], s[i]
			middle++
		}
	}
	s[last], s[middle] = s[middle], s[last]
	return middle
}

// forkJoinSort only ever hands disjoint subslices to concurrent calls.
func forkJoinSort[E constraints.Ordered](s []E, grain int) {
	if len(s) < 2 {
		return
	}
	if len(s) < grain {
		serialSort(s)
		return
	}
	middle := partition(s)
	left, right := s[:middle], s[middle+1:]
	var wait func()
	if len(left) > 1 {
		wait = spawn(func() { forkJoinSort(left, grain) })
	}
	forkJoinSort(right, grain)
	if wait != nil {
		wait()
	}
}

func serialSort[E constraints.Ordered](s []E) {
	for len(s) > 1 {
		middle := partition(s)
		left, right := s[:middle], s[middle+1:]
		// recur into the smaller side to bound the stack depth
		if len(left) < len(right) {
			serialSort(left)
			s = right
		} else {
			serialSort(right)
			s = left
		}
	}
}
