// Package forkjoin provides functions and data structures for expressing
// fork-join parallel algorithms over contiguous sequences of elements. Work
// recursively splits into independent branches that rejoin at well-defined
// synchronization points, and results accumulated by the branches are combined
// deterministically when they rejoin.
//
// Forkjoin provides the following subpackages:
//
// forkjoin/parallel provides the spawn/sync substrate, as well as functions for
// executing thunks, ranges, and reducers over ranges in parallel.
//
// forkjoin/reduce provides reducers: accumulators that give every branch of a
// parallel computation its own private view, and combine the views with an
// associative operation when branches join. It includes indexed minimum and
// maximum reducers and a collection reducer.
//
// forkjoin/sort provides a fork-join quicksort that spawns the left partition
// and continues with the right one.
//
// forkjoin/speculative provides early-terminating variants of the predicate
// functions from forkjoin/parallel.
//
// forkjoin/sequential provides sequential implementations of the functions
// from forkjoin/parallel, for testing and debugging purposes.
//
// Forkjoin has been influenced to various extents by ideas from Cilk and
// Threading Building Blocks. See http://supertech.csail.mit.edu/papers/steal.pdf
// for some theoretical background, and
// https://www.cilkplus.org/tutorial-reducers for the reducer concept.
package forkjoin
