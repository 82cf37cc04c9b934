package reduce

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestMinMax(t *testing.T) {
	tests := []struct {
		name             string
		input            []int
		maxValue, maxIdx int
		minValue, minIdx int
	}{
		{"mixed", []int{5, 3, 8, 1, 9, 2}, 9, 4, 1, 3},
		{"all equal", []int{4, 4, 4}, 4, 0, 4, 0},
		{"single", []int{7}, 7, 0, 7, 0},
		{"repeated extrema", []int{2, 9, 1, 9, 1, 2}, 9, 1, 1, 2},
		{"negative", []int{-3, -8, -1, -8}, -1, 2, -8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, index, err := Max(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.maxValue, value)
			assert.Equal(t, tt.maxIdx, index)

			value, index, err = Min(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minValue, value)
			assert.Equal(t, tt.minIdx, index)
		})
	}
}

func TestMinMaxEmpty(t *testing.T) {
	_, index, err := Max([]int{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, -1, index)

	_, _, err = Min[float64](nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	var x Indexed[string]
	assert.True(t, x.Empty())
	_, _, err = x.Get()
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMinMaxAgainstGonum(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, size := range []int{1, 2, 17, 1000, 100000} {
		s := make([]float64, size)
		for i := range s {
			// few distinct values, so ties are common
			s[i] = float64(rnd.Intn(50))
		}

		value, index, err := Max(s)
		require.NoError(t, err)
		assert.Equal(t, floats.Max(s), value)
		assert.Equal(t, floats.MaxIdx(s), index)

		value, index, err = Min(s)
		require.NoError(t, err)
		assert.Equal(t, floats.Min(s), value)
		assert.Equal(t, floats.MinIdx(s), index)
	}
}

func TestIndexedCombine(t *testing.T) {
	var a, b, c Indexed[int]
	a.UpdateMax(5, 10)
	b.UpdateMax(2, 10)
	c.UpdateMax(9, 3)
	var empty Indexed[int]

	left := combineMax(combineMax(a, b), c)
	right := combineMax(a, combineMax(b, c))
	assert.Equal(t, left, right)

	value, index, err := left.Get()
	require.NoError(t, err)
	assert.Equal(t, 10, value)
	assert.Equal(t, 2, index)

	assert.Equal(t, a, combineMax(a, empty))
	assert.Equal(t, a, combineMax(empty, a))
	assert.Equal(t, b, combineMin(a, b))
	assert.Equal(t, c, combineMin(combineMin(a, b), c))
}

func TestReducerFor(t *testing.T) {
	s := []string{"pear", "apple", "fig", "apple", "plum"}
	r := NewMinIndex[string]()
	For(r, 0, len(s), len(s), func(view *Indexed[string], i int) {
		view.UpdateMin(i, s[i])
	})
	x, err := r.Result()
	require.NoError(t, err)
	value, index, err := x.Get()
	require.NoError(t, err)
	assert.Equal(t, "apple", value)
	assert.Equal(t, 1, index)
}
