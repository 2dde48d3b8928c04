// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "sort"

// IntSet is a finite set of integers kept as a normalized list of closed
// ranges: ranges are non-empty, sorted, and separated by gaps of at least
// one. The zero value is the empty set.
type IntSet struct {
	ranges [][2]int
}

// NewIntSet builds a set from a list of [min, max] ranges, in any order and
// possibly overlapping. Ranges with min > max are ignored.
func NewIntSet(ranges ...[2]int) IntSet {
	rs := make([][2]int, 0, len(ranges))
	for _, r := range ranges {
		if r[0] <= r[1] {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i][0] < rs[j][0] })
	var norm [][2]int
	for _, r := range rs {
		if n := len(norm); n > 0 && r[0] <= norm[n-1][1]+1 {
			if r[1] > norm[n-1][1] {
				norm[n-1][1] = r[1]
			}
			continue
		}
		norm = append(norm, r)
	}
	return IntSet{ranges: norm}
}

// Interval returns the set of all integers between min and max, inclusive.
func Interval(min, max int) IntSet {
	return NewIntSet([2]int{min, max})
}

// IsEmpty reports whether the set has no element.
func (s IntSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Size returns the number of elements in the set.
func (s IntSet) Size() int {
	size := 0
	for _, r := range s.ranges {
		size += r[1] - r[0] + 1
	}
	return size
}

// Min returns the smallest element. Only meaningful on a non-empty set.
func (s IntSet) Min() int {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[0][0]
}

// Max returns the largest element. Only meaningful on a non-empty set.
func (s IntSet) Max() int {
	if len(s.ranges) == 0 {
		return 0
	}
	return s.ranges[len(s.ranges)-1][1]
}

// Contains reports whether v is an element of the set.
func (s IntSet) Contains(v int) bool {
	for _, r := range s.ranges {
		if v < r[0] {
			return false
		}
		if v <= r[1] {
			return true
		}
	}
	return false
}

// Inter returns the intersection of s and t.
func (s IntSet) Inter(t IntSet) IntSet {
	var res [][2]int
	i, j := 0, 0
	for i < len(s.ranges) && j < len(t.ranges) {
		a, b := s.ranges[i], t.ranges[j]
		lo, hi := a[0], a[1]
		if b[0] > lo {
			lo = b[0]
		}
		if b[1] < hi {
			hi = b[1]
		}
		if lo <= hi {
			res = append(res, [2]int{lo, hi})
		}
		if a[1] < b[1] {
			i++
		} else {
			j++
		}
	}
	return IntSet{ranges: res}
}

// ValueSeq is a forward iterator over a sequence of integer values.
type ValueSeq interface {
	// Ok reports whether the iterator still points at a value.
	Ok() bool
	// Next advances to the following value.
	Next()
	// Val returns the current value.
	Val() int
}

// Values returns a forward iterator over the elements of the set, in
// increasing order.
func (s IntSet) Values() ValueSeq {
	it := &intSetIter{s: s}
	if !s.IsEmpty() {
		it.v = s.ranges[0][0]
	} else {
		it.r = -1
	}
	return it
}

type intSetIter struct {
	s IntSet
	r int // index of the current range, -1 when exhausted
	v int // current value
}

func (it *intSetIter) Ok() bool {
	return it.r >= 0 && it.r < len(it.s.ranges)
}

func (it *intSetIter) Next() {
	if !it.Ok() {
		return
	}
	if it.v < it.s.ranges[it.r][1] {
		it.v++
		return
	}
	it.r++
	if it.r < len(it.s.ranges) {
		it.v = it.s.ranges[it.r][0]
	}
}

func (it *intSetIter) Val() int {
	return it.v
}
