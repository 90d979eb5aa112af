// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slices

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// A Scheme selects the partitioning algorithm used by a Sorter.
type Scheme int

const (
	// Hoare partitions with two cursors converging from both ends.
	Hoare Scheme = iota
	// Lomuto partitions with a single forward cursor and the pivot at the end.
	Lomuto
)

func (sc Scheme) String() string {
	switch sc {
	case Hoare:
		return "hoare"
	case Lomuto:
		return "lomuto"
	default:
		return fmt.Sprintf("Scheme(%d)", int(sc))
	}
}

// A Sorter holds the configuration for sorting slices of E.
// Only Less is required; the zero value of every other field selects the
// default behavior. A Sorter may be shared between goroutines as long as
// each call owns its slice and the Pivot is safe for concurrent use.
type Sorter[E any] struct {
	// Less reports whether a sorts before b.
	Less func(a, b E) bool

	// Pivot picks the partitioning element. If nil, RandomPivot is used.
	Pivot Pivot[E]

	// Scheme selects the partition algorithm. The default is Hoare.
	Scheme Scheme

	// Cutoff is the length below which QuickSort hands a range to
	// insertion sort instead of partitioning it. Values of 2 or less
	// leave every range of two or more elements to quicksort.
	Cutoff int

	// Logger, if non-nil, receives a Debug record for every partition
	// step and one summary record per QuickSort call.
	Logger *slog.Logger
}

func (st Sorter[E]) less() func(a, b E) bool {
	if st.Less == nil {
		panic("slices: Sorter with nil Less")
	}
	return st.Less
}

func (st Sorter[E]) partition() func(s []E, pivot int, less func(a, b E) bool) int {
	switch st.Scheme {
	case Hoare:
		return partitionHoare[E]
	case Lomuto:
		return partitionLomuto[E]
	default:
		panic("slices: unknown " + st.Scheme.String())
	}
}

// InsertionSort sorts s in ascending order using insertion sort.
func (st Sorter[E]) InsertionSort(s []E) {
	insertionSort(s, st.less())
}

// Partition rearranges s around the value at index pivot using the
// Sorter's scheme and returns the index where that value ends up.
// It panics if s is empty or pivot is out of range.
func (st Sorter[E]) Partition(s []E, pivot int) int {
	return st.partition()(s, pivot, st.less())
}

// QuickSort sorts s in ascending order.
func (st Sorter[E]) QuickSort(s []E) {
	r := st.newRun()
	r.sort(s, 0, 1)
	if r.trace {
		st.Logger.LogAttrs(context.Background(), slog.LevelDebug, "quicksort",
			slog.Int("len", len(s)),
			slog.Int("partitions", r.partitions),
			slog.Int("depth", r.depth))
	}
}

// run is the state of a single QuickSort call.
type run[E any] struct {
	less      func(a, b E) bool
	pivot     Pivot[E]
	partition func(s []E, pivot int, less func(a, b E) bool) int
	scheme    Scheme
	cutoff    int
	logger    *slog.Logger
	trace     bool

	partitions int
	depth      int // deepest nested call of sort
}

func (st Sorter[E]) newRun() *run[E] {
	r := &run[E]{
		less:      st.less(),
		pivot:     st.Pivot,
		partition: st.partition(),
		scheme:    st.Scheme,
		cutoff:    st.Cutoff,
		logger:    st.Logger,
	}
	if r.pivot == nil {
		r.pivot = RandomPivot[E]
	}
	r.trace = r.logger != nil && r.logger.Enabled(context.Background(), slog.LevelDebug)
	return r
}

// sort sorts s, which starts at offset in the caller's slice. It recurses
// into the shorter side of each split and loops on the longer one, so the
// nesting depth stays within log2(len(s))+1.
func (r *run[E]) sort(s []E, offset, depth int) {
	if depth > r.depth && len(s) > 1 {
		r.depth = depth
	}
	for len(s) > 1 {
		if len(s) < r.cutoff {
			insertionSort(s, r.less)
			return
		}
		pivot := r.pivot(s, r.less)
		k := r.partition(s, pivot, r.less)
		r.partitions++
		if r.trace {
			r.logger.LogAttrs(context.Background(), slog.LevelDebug, "partition",
				slog.Int("offset", offset),
				slog.Int("len", len(s)),
				slog.Int("pivot", offset+pivot),
				slog.Int("split", offset+k),
				slog.String("scheme", r.scheme.String()))
		}

		left, right := s[:k], s[k+1:]
		if len(left) < len(right) {
			r.sort(left, offset, depth+1)
			s, offset = right, offset+k+1
		} else {
			r.sort(right, offset+k+1, depth+1)
			s = left
		}
	}
}
