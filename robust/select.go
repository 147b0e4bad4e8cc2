// SPDX-License-Identifier: MIT
// Package: shesd/robust
//
// select.go — quickselect over a View.

package robust

// FindKInPlace returns the value that would sit at position k if the window
// were sorted in descending order (k=0 is the largest element).
//
// Algorithm Outline:
//  1. Pick a pivot element with the policy (nil ⇒ RandomPivot with a fresh
//     default-seeded generator).
//  2. Partition the window around it: s = {x > pivot}, b = the rest.
//  3. len(s) == k ⇒ the pivot is the answer (it is the maximum of b).
//  4. len(s) == 0 ⇒ the pivot is the window maximum; split off every copy of
//     it. If there are more than k copies the pivot is the answer, otherwise
//     continue in the remainder with k reduced by the number of copies.
//  5. len(s) < k ⇒ continue in b with k − len(s).
//  6. len(s) > k ⇒ continue in s with k unchanged.
//
// Every step strictly shrinks the window, so the loop terminates even when all
// elements are equal. The multiset of window values is preserved; only their
// order changes.
//
// Errors:
//   - ErrEmptyInput      — the window is empty.
//   - ErrRankOutOfRange  — k ∉ [0, v.Len()).
//   - ErrPivotOutOfRange — the policy returned an index outside the window.
//
// Complexity:
//
//	Time   = O(n) expected with RandomPivot, O(n²) worst case
//	Memory = O(1)
func FindKInPlace(v View, k int, pivot Pivot) (float64, error) {
	if v.Len() == 0 {
		return 0, robustErrorf(opFindKInPlace, ErrEmptyInput)
	}
	if k < 0 || k >= v.Len() {
		return 0, robustErrorf(opFindKInPlace, ErrRankOutOfRange)
	}
	if pivot == nil {
		pivot = RandomPivot(nil)
	}

	for {
		if v.Len() == 1 {
			return v.At(0), nil
		}

		idx := pivot(v)
		if idx < 0 || idx >= v.Len() {
			return 0, robustErrorf(opFindKInPlace, ErrPivotOutOfRange)
		}
		p := v.At(idx)

		s, b := v.Partition(func(x float64) bool { return x > p })
		switch n := s.Len(); {
		case n == k:
			return p, nil
		case n == 0:
			eq, rest := v.Partition(func(x float64) bool { return x == p })
			if eq.Len() > k {
				return p, nil
			}
			v, k = rest, k-eq.Len()
		case n < k:
			v, k = b, k-n
		default:
			v = s
		}
	}
}
