// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slices

import (
	"strings"
	"testing"

	"github.com/xsort/inplace/sortcheck"
	"golang.org/x/exp/rand"
)

var partitions = []struct {
	name string
	fn   func(s []int, pivot int) int
}{
	{"Hoare", Partition[int]},
	{"Lomuto", PartitionLomuto[int]},
	{"HoareFunc", func(s []int, pivot int) int { return PartitionFunc(s, pivot, cmpLess[int]) }},
	{"LomutoFunc", func(s []int, pivot int) int { return PartitionLomutoFunc(s, pivot, cmpLess[int]) }},
	{"Sorter", Sorter[int]{Less: cmpLess[int]}.Partition},
}

// checkSplit verifies that k is a valid index holding value and that s
// is split around it.
func checkSplit(t *testing.T, in, s []int, value, k int) {
	t.Helper()
	if k < 0 || k >= len(s) {
		t.Fatalf("partition of %v returned %d, out of range [0:%d]", in, k, len(s))
	}
	if s[k] != value {
		t.Errorf("partition of %v around %d: s[%d] = %d", in, value, k, s[k])
	}
	for i, v := range s[:k] {
		if v > value {
			t.Errorf("partition of %v around %d: s[%d] = %d left of split %d (%v)", in, value, i, v, k, s)
		}
	}
	for i, v := range s[k+1:] {
		if v < value {
			t.Errorf("partition of %v around %d: s[%d] = %d right of split %d (%v)", in, value, k+1+i, v, k, s)
		}
	}
	if err := sortcheck.Permutation(in, s); err != nil {
		t.Error(err)
	}
}

func TestPartitionEveryPivot(t *testing.T) {
	inputs := [][]int{
		{1},
		{2, 1},
		{1, 2},
		{5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{3, 9, 2, 1},
		{5, 10, 3, 3, 9, 2, 1},
		{5, 1, 5, 1, 5, 1, 5},
		{1, 5, 1, 5, 1, 5, 1},
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		{2, 2, 1, 1, 3, 3, 2, 2},
	}
	for _, p := range partitions {
		t.Run(p.name, func(t *testing.T) {
			for _, in := range inputs {
				for pivot := range in {
					s := append([]int(nil), in...)
					k := p.fn(s, pivot)
					checkSplit(t, in, s, in[pivot], k)
				}
			}
		})
	}
}

func TestPartitionRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	runs := 20000
	if testing.Short() {
		runs /= 10
	}
	for _, p := range partitions {
		t.Run(p.name, func(t *testing.T) {
			for i := 0; i < runs; i++ {
				in := make([]int, 1+r.Intn(32))
				vals := 1 + r.Intn(len(in)+1)
				for j := range in {
					in[j] = r.Intn(vals)
				}
				pivot := r.Intn(len(in))
				s := append([]int(nil), in...)
				k := p.fn(s, pivot)
				checkSplit(t, in, s, in[pivot], k)
				if t.Failed() {
					return
				}
			}
		})
	}
}

func TestPartitionDuplicatesLomuto(t *testing.T) {
	// Lomuto moves every copy of the pivot value to the right of it.
	s := []int{5, 1, 5, 1, 5, 1, 5}
	if k := PartitionLomuto(s, 0); k != 3 {
		t.Errorf("PartitionLomuto = %d, want 3 (%v)", k, s)
	}
}

func expectPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("no panic, want %q", want)
			return
		}
		if msg, _ := r.(string); !strings.Contains(msg, want) {
			t.Errorf("panic %v, want %q", r, want)
		}
	}()
	f()
}

func TestPartitionContract(t *testing.T) {
	for _, p := range partitions {
		t.Run(p.name, func(t *testing.T) {
			expectPanic(t, "of empty slice", func() { p.fn(nil, 0) })
			expectPanic(t, "pivot index 3 out of range [0:3]", func() { p.fn([]int{1, 2, 3}, 3) })
			expectPanic(t, "pivot index -1 out of range", func() { p.fn([]int{1, 2, 3}, -1) })
		})
	}
}
