// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slices

import "golang.org/x/exp/rand"

// A Pivot chooses the index in [0, len(s)) of the element that a quicksort
// step partitions s around. It is only called with len(s) >= 2 and must not
// modify s.
type Pivot[E any] func(s []E, less func(a, b E) bool) int

// FirstPivot always picks s[0]. Sorted and reverse-sorted input make
// quicksort quadratic with this rule.
func FirstPivot[E any](s []E, less func(a, b E) bool) int {
	return 0
}

// MiddlePivot picks the element at the midpoint of s.
func MiddlePivot[E any](s []E, less func(a, b E) bool) int {
	return len(s) / 2
}

// RandomPivot picks a uniformly random index using the shared source of
// golang.org/x/exp/rand. It is safe for concurrent use.
func RandomPivot[E any](s []E, less func(a, b E) bool) int {
	return rand.Intn(len(s))
}

// SeededPivot returns a Pivot that draws uniformly random indexes from r,
// which makes sorts reproducible for a given seed. The returned Pivot is
// not safe for concurrent use.
func SeededPivot[E any](r *rand.Rand) Pivot[E] {
	return func(s []E, _ func(a, b E) bool) int {
		return r.Intn(len(s))
	}
}

// MedianOfThreePivot picks whichever of the first, middle and last
// elements is the median of the three.
func MedianOfThreePivot[E any](s []E, less func(a, b E) bool) int {
	a, b, c := 0, len(s)/2, len(s)-1
	if less(s[b], s[a]) {
		a, b = b, a
	}
	// s[a] <= s[b]
	if less(s[c], s[b]) {
		if less(s[c], s[a]) {
			return a
		}
		return c
	}
	return b
}
