// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slices

import "fmt"

func checkPivot(name string, n, pivot int) {
	if n == 0 {
		panic("slices: " + name + " of empty slice")
	}
	if pivot < 0 || pivot >= n {
		panic(fmt.Sprintf("slices: %s pivot index %d out of range [0:%d]", name, pivot, n))
	}
}

// partitionHoare runs two cursors inward from both ends of s. The pivot
// value is referenced through p, the index currently holding it, because
// duplicates make it ambiguous to find again by value.
func partitionHoare[E any](s []E, pivot int, less func(a, b E) bool) int {
	checkPivot("Partition", len(s), pivot)
	s[0], s[pivot] = s[pivot], s[0]

	// s[:lo] <= pivot and s[hi+1:] >= pivot hold on every iteration.
	// Each scan is stopped by an element the previous step left behind:
	// the pivot itself on the first pass, the swapped pair afterwards,
	// and s[hi] when both cursors sat on copies of the pivot.
	lo, hi, p := 0, len(s)-1, 0
	for {
		for less(s[lo], s[p]) {
			lo++
		}
		for less(s[p], s[hi]) {
			hi--
		}
		if lo >= hi {
			break
		}
		if !less(s[p], s[lo]) && !less(s[hi], s[p]) {
			// Both cursors are on pivot copies. Swapping would not move
			// either scan, so step past one of them.
			lo++
			continue
		}
		s[lo], s[hi] = s[hi], s[lo]
		switch p {
		case lo:
			p = hi
		case hi:
			p = lo
		}
	}

	// s[hi] <= pivot and s[hi+1] >= pivot, so the pivot can take either
	// slot as long as it stays on its own side.
	k := hi
	if p > hi {
		k = hi + 1
	}
	s[p], s[k] = s[k], s[p]
	return k
}

// partitionLomuto keeps s[:i] < pivot with a single forward cursor and the
// pivot parked at the end until the final swap.
func partitionLomuto[E any](s []E, pivot int, less func(a, b E) bool) int {
	checkPivot("PartitionLomuto", len(s), pivot)
	last := len(s) - 1
	s[pivot], s[last] = s[last], s[pivot]

	i := 0
	for j := 0; j < last; j++ {
		if less(s[j], s[last]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]
	return i
}
