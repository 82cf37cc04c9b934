// Package reduce provides reducers for fork-join computations.
//
// A reducer gives every branch of a parallel computation its own private
// view of an accumulator. A branch only ever touches its own view, so views
// need no locking. When two branches join, the view of the right branch is
// combined into the view of the left branch with an associative operation,
// and the right view is retired. Once all branches have joined back into the
// root view, the reducer's result is available.
//
// Views are always combined with the left branch (lower indices) as the first
// operand, so the result of a reduction does not depend on how the branches
// happened to be scheduled, even for operations that are not commutative.
package reduce

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/exascience/forkjoin/internal"
	"github.com/exascience/forkjoin/parallel"
)

var (
	// ErrEmptyInput is returned when an extremum is read for a reduction
	// that has not observed any element.
	ErrEmptyInput = errors.New("reduce: no element observed")

	// ErrPrematureRead is returned by Reducer.Result while views forked
	// from the reducer have not been joined back yet.
	ErrPrematureRead = errors.New("reduce: result read before all views joined")
)

// A Reducer combines values accumulated in independent views.
//
// The zero Reducer is not valid; use New.
type Reducer[T any] struct {
	identity func() T
	combine  func(x, y T) T
	root     View[T]
	pending  atomic.Int64
}

// New returns a reducer with the given identity and combine operation.
//
// identity is invoked for each new view and must return the neutral element
// of combine. combine must be associative. It receives the value of the left
// view as x and the value of the right view as y, and may reuse x for its
// result.
func New[T any](identity func() T, combine func(x, y T) T) *Reducer[T] {
	r := &Reducer[T]{identity: identity, combine: combine}
	r.root = View[T]{reducer: r, value: identity()}
	return r
}

// View returns the root view of the reducer, owned by the goroutine that
// starts the computation.
func (r *Reducer[T]) View() *View[T] {
	return &r.root
}

// Result returns the value of the root view. It fails with ErrPrematureRead
// while a Range or For is running on r, or if any forked view has not been
// joined yet.
func (r *Reducer[T]) Result() (result T, err error) {
	if pending := r.pending.Load(); pending != 0 {
		return result, fmt.Errorf("%w: %d branches outstanding", ErrPrematureRead, pending)
	}
	return r.root.value, nil
}

// A View is the private accumulator of one branch.
//
// A view must only be used by one goroutine at a time. Its value becomes
// visible to other goroutines only through Join, which the caller must invoke
// after the branch owning the joined view has terminated.
type View[T any] struct {
	reducer *Reducer[T]
	value   T
	retired bool
}

// Value returns a pointer to the accumulated value of the view.
func (v *View[T]) Value() *T {
	return &v.value
}

// Fork returns a new view, initialized to the identity, for a branch that
// covers elements after the ones covered by v so far.
func (v *View[T]) Fork() *View[T] {
	v.reducer.pending.Add(1)
	return &View[T]{reducer: v.reducer, value: v.reducer.identity()}
}

// Join combines the value of right into v and retires right. right must have
// been forked from the same reducer, and its branch must have terminated.
func (v *View[T]) Join(right *View[T]) {
	switch {
	case right.reducer != v.reducer:
		panic("reduce: joining views of different reducers")
	case right == v:
		panic("reduce: joining a view into itself")
	case right == &v.reducer.root:
		panic("reduce: joining the root view")
	case v.retired || right.retired:
		panic(fmt.Errorf("%w: view already joined", ErrPrematureRead))
	}
	v.value = v.reducer.combine(v.value, right.value)
	var zero T
	right.value = zero
	right.retired = true
	v.reducer.pending.Add(-1)
}

// Range receives a reducer, a range, a batch count n, and a range function
// body, divides the range into batches, and invokes body for each of these
// batches in parallel, covering the half-open interval from low to high. Each
// invocation of body receives the value of a view that no other invocation
// uses concurrently. Range returns only when all batches have terminated and
// all their views have been joined into the root view of r.
//
// The batches are determined as for parallel.Range. Range panics if high <
// low, or if n < 0. Only one Range or For may run on a reducer at a time.
//
// If one or more invocations of body panic, Range eventually panics with the
// left-most recovered panic value, and the result of r is not available.
func Range[T any](r *Reducer[T], low, high, n int, body func(view *T, low, high int)) {
	var recur func(*View[T], int, int, int)
	recur = func(v *View[T], low, high, n int) {
		switch {
		case n == 1:
			body(v.Value(), low, high)
		case n > 1:
			mid, half, ok := internal.Split(low, high, n)
			if !ok {
				body(v.Value(), low, high)
				return
			}
			right := v.Fork()
			wait := parallel.Spawn(func() { recur(right, mid, high, n-half) })
			recur(v, low, mid, half)
			wait()
			v.Join(right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	batches := internal.ComputeNofBatches(low, high, n)
	// the root branch counts as outstanding until all batches are joined;
	// a panic leaves it counted, so the partial result stays unreadable
	r.pending.Add(1)
	recur(r.View(), low, high, batches)
	r.pending.Add(-1)
}

// For invokes body for each index in the half-open interval from low to high,
// in parallel, as described for Range.
func For[T any](r *Reducer[T], low, high, n int, body func(view *T, i int)) {
	Range(r, low, high, n, func(view *T, low, high int) {
		for i := low; i < high; i++ {
			body(view, i)
		}
	})
}
