// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortcheck verifies the properties every correct sort must have:
// the output is in order, it is a permutation of the input, and sorting it
// again changes nothing.
//
// The checks report violations as errors wrapping one of the sentinel
// values below, so tests can tell failures apart with xerrors.Is.
package sortcheck

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
)

var (
	ErrUnordered      = xerrors.New("out of order")
	ErrNotPermutation = xerrors.New("not a permutation of the input")
	ErrNotIdempotent  = xerrors.New("sorting the output again changed it")
)

// Sorted returns an error naming the first adjacent pair of s that is in
// descending order, or nil if s is sorted.
func Sorted[E constraints.Ordered](s []E) error {
	return SortedFunc(s, func(a, b E) bool { return a < b })
}

// SortedFunc is like Sorted but orders elements with less.
func SortedFunc[E any](s []E, less func(a, b E) bool) error {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return xerrors.Errorf("s[%d]=%v before s[%d]=%v: %w", i-1, s[i-1], i, s[i], ErrUnordered)
		}
	}
	return nil
}

// Permutation returns an error if after does not hold exactly the same
// elements as before, counting repeats.
func Permutation[E constraints.Ordered](before, after []E) error {
	if diff := cmp.Diff(counts(before), counts(after)); diff != "" {
		return xerrors.Errorf("element counts differ (-before +after):\n%s: %w", diff, ErrNotPermutation)
	}
	return nil
}

func counts[E comparable](s []E) map[E]int {
	m := make(map[E]int, len(s))
	for _, v := range s {
		m[v]++
	}
	return m
}

// Check runs sort on a copy of in and verifies that the result is sorted,
// is a permutation of in, and is unchanged by a second sort. in itself is
// not modified.
func Check[E constraints.Ordered](sort func([]E), in []E) error {
	got := append([]E(nil), in...)
	sort(got)
	if err := Sorted(got); err != nil {
		return xerrors.Errorf("sorting %v gave %v: %w", in, got, err)
	}
	if err := Permutation(in, got); err != nil {
		return xerrors.Errorf("sorting %v gave %v: %w", in, got, err)
	}
	again := append([]E(nil), got...)
	sort(again)
	if !cmp.Equal(got, again) {
		return xerrors.Errorf("sorting %v gave %v, then %v: %w", in, got, again, ErrNotIdempotent)
	}
	return nil
}

// Random runs Check on runs random inputs drawn from r. Each input has a
// length in [0, maxLen] and values in [0, maxValue), so a small maxValue
// produces many duplicates. It returns the first failure.
//
// Random panics if maxLen is negative or maxValue is not positive.
func Random(r *rand.Rand, runs, maxLen, maxValue int, sort func([]int)) error {
	if maxLen < 0 || maxValue <= 0 {
		panic("sortcheck: Random with negative maxLen or non-positive maxValue")
	}
	in := make([]int, 0, maxLen)
	for i := 0; i < runs; i++ {
		in = in[:r.Intn(maxLen+1)]
		for j := range in {
			in[j] = r.Intn(maxValue)
		}
		if err := Check(sort, in); err != nil {
			return xerrors.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}
