// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slices sorts slices in place with insertion sort and quicksort.
//
// Neither sort is stable. Both require a strict weak ordering: for the
// ordered entry points that is the < operator, for the Func variants it is
// the supplied less function. Behavior on orders that are not total, such as
// float64 slices holding NaN, is unspecified.
package slices

import "golang.org/x/exp/constraints"

func cmpLess[E constraints.Ordered](a, b E) bool {
	return a < b
}

// InsertionSort sorts s in ascending order by swapping each element
// backward past its greater predecessors. It takes O(n) comparisons on
// sorted input and O(n²) in the worst case.
func InsertionSort[E constraints.Ordered](s []E) {
	insertionSort(s, cmpLess[E])
}

// InsertionSortFunc sorts s in ascending order as determined by less.
func InsertionSortFunc[E any](s []E, less func(a, b E) bool) {
	insertionSort(s, less)
}

// QuickSort sorts s in ascending order using a Hoare-partitioned quicksort
// with uniformly random pivots.
func QuickSort[E constraints.Ordered](s []E) {
	Sorter[E]{Less: cmpLess[E]}.QuickSort(s)
}

// QuickSortFunc sorts s in ascending order as determined by less, using the
// same algorithm as QuickSort.
func QuickSortFunc[E any](s []E, less func(a, b E) bool) {
	Sorter[E]{Less: less}.QuickSort(s)
}

// Partition rearranges s around the value at index pivot using the Hoare
// scheme and returns the index k where that value ends up. On return every
// element of s[:k] is <= s[k] and every element of s[k+1:] is >= s[k].
//
// Partition panics if s is empty or pivot is not a valid index of s.
func Partition[E constraints.Ordered](s []E, pivot int) int {
	return partitionHoare(s, pivot, cmpLess[E])
}

// PartitionFunc is like Partition but orders elements with less.
func PartitionFunc[E any](s []E, pivot int, less func(a, b E) bool) int {
	return partitionHoare(s, pivot, less)
}

// PartitionLomuto is like Partition but uses the Lomuto scheme. Elements
// equal to the pivot all end up after it.
func PartitionLomuto[E constraints.Ordered](s []E, pivot int) int {
	return partitionLomuto(s, pivot, cmpLess[E])
}

// PartitionLomutoFunc is like PartitionLomuto but orders elements with less.
func PartitionLomutoFunc[E any](s []E, pivot int, less func(a, b E) bool) int {
	return partitionLomuto(s, pivot, less)
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[E constraints.Ordered](s []E) bool {
	return IsSortedFunc(s, cmpLess[E])
}

// IsSortedFunc reports whether s is sorted in ascending order, with less as
// the comparison function.
func IsSortedFunc[E any](s []E, less func(a, b E) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
