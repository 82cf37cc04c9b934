package reduce

import "golang.org/x/exp/constraints"

// Indexed records an extremum together with the index at which it occurs.
// The zero Indexed has not observed any element.
type Indexed[E constraints.Ordered] struct {
	value E
	index int
	seen  bool
}

// Empty reports whether x has not observed any element yet.
func (x Indexed[E]) Empty() bool {
	return !x.seen
}

// Get returns the extremum and its index, or ErrEmptyInput.
func (x Indexed[E]) Get() (value E, index int, err error) {
	if !x.seen {
		return value, -1, ErrEmptyInput
	}
	return x.value, x.index, nil
}

// UpdateMin records value at index if it is smaller than the current minimum,
// or equal to it at a smaller index.
func (x *Indexed[E]) UpdateMin(index int, value E) {
	if !x.seen || value < x.value || (value == x.value && index < x.index) {
		x.value, x.index, x.seen = value, index, true
	}
}

// UpdateMax records value at index if it is larger than the current maximum,
// or equal to it at a smaller index.
func (x *Indexed[E]) UpdateMax(index int, value E) {
	if !x.seen || value > x.value || (value == x.value && index < x.index) {
		x.value, x.index, x.seen = value, index, true
	}
}

func combineMin[E constraints.Ordered](x, y Indexed[E]) Indexed[E] {
	if y.seen {
		x.UpdateMin(y.index, y.value)
	}
	return x
}

func combineMax[E constraints.Ordered](x, y Indexed[E]) Indexed[E] {
	if y.seen {
		x.UpdateMax(y.index, y.value)
	}
	return x
}

// NewMinIndex returns a reducer that tracks the minimum and the lowest index
// at which it occurs. Views are updated with Indexed.UpdateMin.
func NewMinIndex[E constraints.Ordered]() *Reducer[Indexed[E]] {
	return New(func() Indexed[E] { return Indexed[E]{} }, combineMin[E])
}

// NewMaxIndex returns a reducer that tracks the maximum and the lowest index
// at which it occurs. Views are updated with Indexed.UpdateMax.
func NewMaxIndex[E constraints.Ordered]() *Reducer[Indexed[E]] {
	return New(func() Indexed[E] { return Indexed[E]{} }, combineMax[E])
}

// Min returns the smallest element of s and the lowest index at which it
// occurs, computed in parallel. It fails with ErrEmptyInput if s is empty.
func Min[E constraints.Ordered](s []E) (value E, index int, err error) {
	r := NewMinIndex[E]()
	Range(r, 0, len(s), 0, func(view *Indexed[E], low, high int) {
		for i := low; i < high; i++ {
			view.UpdateMin(i, s[i])
		}
	})
	x, err := r.Result()
	if err != nil {
		return value, -1, err
	}
	return x.Get()
}

// Max returns the largest element of s and the lowest index at which it
// occurs, computed in parallel. It fails with ErrEmptyInput if s is empty.
func Max[E constraints.Ordered](s []E) (value E, index int, err error) {
	r := NewMaxIndex[E]()
	Range(r, 0, len(s), 0, func(view *Indexed[E], low, high int) {
		for i := low; i < high; i++ {
			view.UpdateMax(i, s[i])
		}
	})
	x, err := r.Result()
	if err != nil {
		return value, -1, err
	}
	return x.Get()
}
