package robust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shesd/robust"
)

// TestView_Partition_SplitsWindow checks that Partition moves every element
// satisfying the predicate to the left view and tiles the parent exactly.
func TestView_Partition_SplitsWindow(t *testing.T) {
	buf := []float64{5, 1, 7, 3, 9, 2, 8}
	v := robust.NewView(buf)

	left, right := v.Partition(func(x float64) bool { return x > 4 })

	require.Equal(t, 4, left.Len(), "four values exceed 4")
	require.Equal(t, 3, right.Len(), "three values do not")
	for i := 0; i < left.Len(); i++ {
		assert.Greater(t, left.At(i), 4.0)
	}
	for i := 0; i < right.Len(); i++ {
		assert.LessOrEqual(t, right.At(i), 4.0)
	}

	lf, lu := left.Bounds()
	rf, ru := right.Bounds()
	assert.Equal(t, 0, lf)
	assert.Equal(t, lu, rf, "halves must be adjacent")
	assert.Equal(t, len(buf), ru)
}

// TestView_Partition_StaysInsideBounds verifies that partitioning a sub-window
// never touches elements outside [from, until).
func TestView_Partition_StaysInsideBounds(t *testing.T) {
	buf := []float64{100, 200, 5, 1, 7, 3, 300, 400}
	v := robust.Window(buf, 2, 6)

	left, right := v.Partition(func(x float64) bool { return x > 4 })

	assert.Equal(t, []float64{100, 200}, buf[:2], "prefix untouched")
	assert.Equal(t, []float64{300, 400}, buf[6:], "suffix untouched")
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 2, right.Len())
	assert.ElementsMatch(t, []float64{5, 7}, left.Values())
	assert.ElementsMatch(t, []float64{1, 3}, right.Values())
}

// TestView_Partition_Degenerate covers empty windows and one-sided predicates.
func TestView_Partition_Degenerate(t *testing.T) {
	var empty robust.View
	l, r := empty.Partition(func(float64) bool { return true })
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, r.Len())

	buf := []float64{3, 3, 3}
	l, r = robust.NewView(buf).Partition(func(x float64) bool { return x > 3 })
	assert.Equal(t, 0, l.Len(), "nothing exceeds the constant")
	assert.Equal(t, 3, r.Len())

	l, r = robust.NewView(buf).Partition(func(x float64) bool { return x == 3 })
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0, r.Len())
}

// TestView_Sub_RelativeIndexing checks that sub-windows index relative to
// their own start and share the parent buffer.
func TestView_Sub_RelativeIndexing(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5}
	v := robust.Window(buf, 1, 5).Sub(1, 3)

	require.Equal(t, 2, v.Len())
	assert.Equal(t, 2.0, v.At(0))
	assert.Equal(t, 3.0, v.At(1))

	v.Set(0, 42)
	v.Swap(0, 1)
	assert.Equal(t, []float64{0, 1, 3, 42, 4, 5}, buf, "writes land in the shared buffer")
}

// TestView_OutOfRangePanics verifies that contract violations are assertions.
func TestView_OutOfRangePanics(t *testing.T) {
	buf := []float64{1, 2, 3}

	assert.Panics(t, func() { robust.Window(buf, 2, 1) }, "from > until")
	assert.Panics(t, func() { robust.Window(buf, 0, 4) }, "until > len")
	assert.Panics(t, func() { robust.Window(buf, 1, 3).At(2) }, "index past window")
	assert.Panics(t, func() { robust.Window(buf, 1, 3).Sub(0, 3) }, "sub wider than parent")
}
