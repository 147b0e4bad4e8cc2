// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// view.go — windowed access to a shared float64 buffer.
//
// Contract:
//   • A View never owns its buffer; several views may share one backing slice.
//   • Invariant: 0 ≤ from ≤ until ≤ len(buf).
//   • Partition reads and writes only [from, until) and returns two views
//     that exactly tile the parent window. Children never widen.
//   • Index violations panic: they are unreachable from validated inputs.

package robust

import "fmt"

// View is a logical window [from, until) over a mutable buffer.
// The zero value is an empty window over a nil buffer.
type View struct {
	buf   []float64
	from  int
	until int
}

// NewView returns a window covering the whole of buf.
func NewView(buf []float64) View {
	return View{buf: buf, from: 0, until: len(buf)}
}

// Window returns a view over buf[from:until].
// Panics when the bounds violate 0 ≤ from ≤ until ≤ len(buf).
func Window(buf []float64, from, until int) View {
	if from < 0 || from > until || until > len(buf) {
		panic(fmt.Sprintf("robust: window [%d,%d) outside buffer of length %d", from, until, len(buf)))
	}

	return View{buf: buf, from: from, until: until}
}

// Len returns the number of elements in the window.
func (v View) Len() int { return v.until - v.from }

// Bounds returns the window bounds in buffer coordinates.
func (v View) Bounds() (from, until int) { return v.from, v.until }

// At returns the i-th element of the window (0-based, relative to from).
func (v View) At(i int) float64 {
	v.check(i)

	return v.buf[v.from+i]
}

// Set overwrites the i-th element of the window.
func (v View) Set(i int, x float64) {
	v.check(i)
	v.buf[v.from+i] = x
}

// Swap exchanges the i-th and j-th elements of the window.
func (v View) Swap(i, j int) {
	v.check(i)
	v.check(j)
	v.buf[v.from+i], v.buf[v.from+j] = v.buf[v.from+j], v.buf[v.from+i]
}

// Sub returns the child window [from+i, from+j) of v.
// Panics unless 0 ≤ i ≤ j ≤ v.Len().
func (v View) Sub(i, j int) View {
	if i < 0 || i > j || j > v.Len() {
		panic(fmt.Sprintf("robust: sub-window [%d,%d) outside window of length %d", i, j, v.Len()))
	}

	return View{buf: v.buf, from: v.from + i, until: v.from + j}
}

// Partition reorders the window in place so that every element satisfying
// pred precedes every element that does not, and returns the two halves.
//
// Implementation (two-pointer swap scan):
//   - lo advances over elements that already satisfy pred;
//   - hi retreats over elements that already fail it;
//   - a misplaced pair (lo fails, hi satisfies) is swapped.
//
// The relative order inside each half is unspecified. No allocation.
//
// Complexity: O(Len()) time, O(1) extra space.
func (v View) Partition(pred func(float64) bool) (left, right View) {
	lo, hi := v.from, v.until-1
	for lo <= hi {
		switch {
		case pred(v.buf[lo]):
			lo++
		case !pred(v.buf[hi]):
			hi--
		default:
			v.buf[lo], v.buf[hi] = v.buf[hi], v.buf[lo]
			lo++
			hi--
		}
	}

	return View{buf: v.buf, from: v.from, until: lo}, View{buf: v.buf, from: lo, until: v.until}
}

// Values returns a copy of the window contents.
func (v View) Values() []float64 {
	out := make([]float64, v.Len())
	copy(out, v.buf[v.from:v.until])

	return out
}

func (v View) check(i int) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("robust: index %d out of window [%d,%d)", i, v.from, v.until))
	}
}
