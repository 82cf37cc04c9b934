package forkjoin

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()

	// A RangeFunc is a function that receives a range from low to high,
	// with 0 <= low <= high.
	RangeFunc func(low, high int)

	// A RangePredicate is a function that receives a range from low to
	// high, with 0 <= low <= high, and returns a bool.
	RangePredicate func(low, high int) bool
)
