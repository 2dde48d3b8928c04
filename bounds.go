// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"sort"

	"go.uber.org/zap"
)

// Getcardbounds extracts the smallest and largest number of selected columns
// over any assignment satisfying c, among the window of width consecutive
// table columns starting at offset. It is strictly a read: no diagram node
// is built. The false diagram yields the contradictory range (1, 0); the
// true diagram yields (0, width).
//
// The diagram must depend only on columns of the window. Levels skipped
// along a path are free choices and widen the maximum accordingly.
func Getcardbounds(m *Manager, c Node, offset, width int) (curmin, curmax int) {
	if m.err != nil || c == bddzero {
		return 1, 0
	}
	if c == bddone {
		return 0, width
	}

	// rank the window columns by their level under the installed order;
	// paths visit levels in increasing order, so ranks count candidates
	levels := make([]int, width)
	for k := 0; k < width; k++ {
		levels[k] = m.posOf(offset + k)
	}
	sort.Ints(levels)
	rank := make(map[int32]int, width)
	for i, lv := range levels {
		rank[int32(lv)] = i
	}

	w := &cardwalk{m: m, width: width, rank: rank}
	if !w.mark(c) {
		m.seterror("diagram depends on columns outside the extraction window")
		return 1, 0
	}
	defer w.unmark()

	w.walk()
	b, ok := w.reach(c, -1)
	if !ok {
		return 1, 0
	}
	m.logger.Debug("cardinality bounds extracted",
		zap.Int("curmin", b.lo),
		zap.Int("curmax", b.hi),
		zap.Bool("singleton", w.singleton))
	return b.lo, b.hi
}

// selcount is the range of selected-column counts realizable below a node.
type selcount struct {
	lo, hi int
}

// cardwalk holds the transient state of one bound extraction: the mark set
// of reachable nodes, the per-rank buckets driving the level-by-level walk,
// and the per-node count ranges.
type cardwalk struct {
	m         *Manager
	width     int
	rank      map[int32]int
	marked    map[Node]bool
	buckets   [][]Node
	sat       map[Node]selcount // only nodes with a satisfying path below
	singleton bool
}

// mark collects every node reachable from c into the mark set and the rank
// buckets. Each node is visited at most once even though the diagram is a
// DAG with arbitrary sharing. Reports false when a node tests a level
// outside the window.
func (w *cardwalk) mark(c Node) bool {
	w.marked = make(map[Node]bool)
	w.buckets = make([][]Node, w.width)
	stack := []Node{c}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n < 2 || w.marked[n] {
			continue
		}
		r, ok := w.rank[w.m.level(n)]
		if !ok {
			return false
		}
		w.marked[n] = true
		w.buckets[r] = append(w.buckets[r], n)
		stack = append(stack, w.m.low(n), w.m.high(n))
	}
	return true
}

// unmark releases the mark set once the walk is done.
func (w *cardwalk) unmark() {
	w.marked = nil
	w.buckets = nil
}

// reach gives the count range contributed by following an edge from a node
// at rank from down to child. Levels jumped over are free choices: they add
// nothing to the minimum and their number to the maximum. The false terminal
// is unreachable; the true terminal leaves every remaining level free.
func (w *cardwalk) reach(child Node, from int) (selcount, bool) {
	switch child {
	case bddzero:
		return selcount{}, false
	case bddone:
		if gap := w.width - 1 - from; gap > 0 {
			w.singleton = false
			return selcount{0, gap}, true
		}
		return selcount{0, 0}, true
	}
	b, ok := w.sat[child]
	if !ok {
		return selcount{}, false
	}
	gap := w.rank[w.m.level(child)] - from - 1
	if gap > 0 {
		w.singleton = false
	}
	return selcount{b.lo, b.hi + gap}, true
}

// walk processes the marked nodes one level at a time, from the bottom rank
// up, computing for each node the realizable count range below it and
// whether a single satisfying path remains.
func (w *cardwalk) walk() {
	w.sat = make(map[Node]selcount, len(w.marked))
	w.singleton = true
	for r := w.width - 1; r >= 0; r-- {
		if len(w.buckets[r]) > 1 {
			w.singleton = false
		}
		for _, n := range w.buckets[r] {
			lb, lok := w.reach(w.m.low(n), r)
			hb, hok := w.reach(w.m.high(n), r)
			switch {
			case lok && hok:
				w.singleton = false
				lo, hi := lb.lo, lb.hi
				if hb.lo+1 < lo {
					lo = hb.lo + 1
				}
				if hb.hi+1 > hi {
					hi = hb.hi + 1
				}
				w.sat[n] = selcount{lo, hi}
			case lok:
				w.sat[n] = lb
			case hok:
				w.sat[n] = selcount{hb.lo + 1, hb.hi + 1}
			}
		}
	}
}
