// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func values(s IntSet) []int {
	var res []int
	for it := s.Values(); it.Ok(); it.Next() {
		res = append(res, it.Val())
	}
	return res
}

func TestIntSetNormalization(t *testing.T) {
	s := NewIntSet([2]int{5, 7}, [2]int{1, 2}, [2]int{3, 4}, [2]int{6, 9}, [2]int{12, 11})
	// adjacent and overlapping ranges merge, empty ranges drop
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, values(s)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 9, s.Size())
	require.Equal(t, 1, s.Min())
	require.Equal(t, 9, s.Max())
}

func TestIntSetContains(t *testing.T) {
	s := NewIntSet([2]int{0, 1}, [2]int{4, 4})
	for v, want := range map[int]bool{-1: false, 0: true, 1: true, 2: false, 3: false, 4: true, 5: false} {
		require.Equal(t, want, s.Contains(v), "Contains(%d)", v)
	}
	require.True(t, NewIntSet().IsEmpty())
	require.False(t, s.IsEmpty())
}

func TestIntSetInter(t *testing.T) {
	s := NewIntSet([2]int{0, 5}, [2]int{8, 10})
	u := NewIntSet([2]int{3, 9})
	if diff := cmp.Diff([]int{3, 4, 5, 8, 9}, values(s.Inter(u))); diff != "" {
		t.Errorf("intersection mismatch (-want +got):\n%s", diff)
	}
	require.True(t, s.Inter(NewIntSet()).IsEmpty())
	require.True(t, NewIntSet().Inter(s).IsEmpty())
	if diff := cmp.Diff(values(s), values(s.Inter(s))); diff != "" {
		t.Errorf("self intersection mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalValues(t *testing.T) {
	if diff := cmp.Diff([]int{2, 3, 4}, values(Interval(2, 4))); diff != "" {
		t.Errorf("interval mismatch (-want +got):\n%s", diff)
	}
	require.True(t, Interval(3, 2).IsEmpty())
}
