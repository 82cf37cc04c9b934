package reduce

// A Collection accumulates values appended by one or more branches.
//
// Only the multiset of the appended values is meaningful to callers. The order
// in which the values of different branches end up in a collection is not
// guaranteed.
type Collection[E any] []E

// Append adds value to the collection.
func (c *Collection[E]) Append(value E) {
	*c = append(*c, value)
}

// NewCollection returns a reducer that concatenates the collections of
// joined views.
func NewCollection[E any]() *Reducer[Collection[E]] {
	return New(
		func() Collection[E] { return nil },
		func(x, y Collection[E]) Collection[E] { return append(x, y...) },
	)
}

// Collect invokes produce for each index in the half-open interval from low
// to high in parallel, and returns a collection of all produced values. The
// batches are determined as for parallel.Range.
func Collect[E any](low, high, n int, produce func(i int) E) Collection[E] {
	r := NewCollection[E]()
	Range(r, low, high, n, func(view *Collection[E], low, high int) {
		for i := low; i < high; i++ {
			view.Append(produce(i))
		}
	})
	result, err := r.Result()
	if err != nil {
		panic(err)
	}
	return result
}
