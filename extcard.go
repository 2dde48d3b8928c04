// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "go.uber.org/zap"

// Extcardcheck builds the diagram accepting exactly the assignment pairs
// where between cl and cr elements are selected by both x and y, the
// intersection-cardinality restriction cl <= |x ∩ y| <= cr. Candidates are
// the common values of the two initial upper bounds; cr is clamped to the
// intersection size and the same degenerate cases as Cardcheck get dedicated
// constructions.
func Extcardcheck(m *Manager, x, y *View, cl, cr int) Node {
	if m.err != nil {
		return bddzero
	}
	// common values of the two upper bounds, cached so that iteration can
	// start with the greatest element of the intersection
	vals := NewValCache(x.lub.Inter(y.lub).Values())
	isize := vals.Size()
	if cl < 0 {
		cl = 0
	}
	if cr > isize {
		cr = isize
	}
	if cl > isize || cl > cr { // inconsistent cardinality
		return bddzero
	}
	r := isize - 1 // rightmost candidate position
	n := cr + 1    // layer size
	m.logger.Debug("extcardcheck",
		zap.Int("isize", isize),
		zap.Int("cl", cl),
		zap.Int("cr", cr))
	if cr == 0 { // cl <= cr, build the empty intersection
		empty := bddone
		for ; vals.Ok(); vals.Next() {
			v := vals.Min()
			empty = m.And(empty,
				m.Or(x.ElementNeg(v-x.lubMin), y.ElementNeg(v-y.lubMin)))
		}
		return empty
	}
	if cl == cr {
		if cr == isize { // build the full intersection
			full := bddone
			for ; vals.Ok(); vals.Next() {
				v := vals.Min()
				full = m.And(full,
					x.Element(v-x.lubMin), y.Element(v-y.lubMin))
			}
			return full
		}
		return extcardeq(m, vals, x, y, cr, n)
	}
	if cr == isize && cl == 0 { // no cardinality restriction
		return bddone
	}
	return extcardlqgq(m, vals, x, y, cl, cr, n, r)
}

// extcardeq builds the diagram for |x ∩ y| = c over the common candidate
// values in vals. Same layered construction as cardeq, with the membership
// literal replaced by the conjunction of the two views' literals.
func extcardeq(m *Manager, vals *ValCache, x, y *View, c, n int) Node {
	xmin := x.lubMin
	ymin := y.lubMin
	layer := make([]Node, n)

	// seed the lowest layer with the c highest common candidates
	layer[0] = bddone
	vals.Last()
	for i := 1; i <= c; i++ {
		k := vals.Min()
		layer[i] = m.And(x.Element(k-xmin), y.Element(k-ymin))
		vals.Prev()
	}

	// connect nodes in the lowest layer
	for i := 1; i < n; i++ {
		layer[i] = m.ite(layer[i], layer[i-1], bddzero)
	}

	vals.Last()

	// build the remaining layers on top
	for ; vals.Ok(); vals.Prev() {
		pos := vals.Index()
		for i := 0; i < n; i++ {
			col := vals.Min()
			t := bddzero
			if i > 0 {
				t = layer[i-1]
			}
			both := m.ite(y.Element(col-ymin), t, layer[i])
			layer[i] = m.ite(x.Element(col-xmin), both, layer[i])
			vals.Prev()
			if !vals.Ok() {
				break
			}
		}
		if !vals.Ok() {
			break
		}
		vals.Seek(pos)
	}
	return layer[n-1]
}

// extcardlqgq builds the diagram for cl <= |x ∩ y| <= cr over the common
// candidate values in vals. Same phase structure as cardlqgq, with paired
// membership literals.
func extcardlqgq(m *Manager, vals *ValCache, x, y *View, cl, cr, n, r int) Node {
	xmin := x.lubMin
	ymin := y.lubMin
	layer := make([]Node, n)

	// seed chain TOP v(c) v(c-1) ... v(c-cl+1)
	layer[n-cl-1] = bddone
	vals.Last()
	for i := n - cl; i < n; i++ {
		k := vals.Min()
		both := m.ite(y.Element(k-ymin), layer[i-1], bddzero)
		layer[i] = m.ite(x.Element(k-xmin), both, bddzero)
		vals.Prev()
	}

	// start with a shift and build diagonals up to the connection layer
	vals.Last()
	vals.Prev()
	for ; vals.Ok(); vals.Prev() {
		pos := vals.Index()
		// cl < cr <= tab  ==>  n - cl > 0
		for i := n - cl; i < n; i++ {
			col := vals.Min()
			t := layer[i-1]
			both := m.ite(y.Element(col-ymin), t, layer[i])
			layer[i] = m.ite(x.Element(col-xmin), both, layer[i])
			vals.Prev()
			if vals.Index()+1 < r+1-cr {
				vals.Finish()
				break
			}
		}
		if !vals.Ok() {
			break
		}
		vals.Seek(pos)
	}

	if cr == r+1 {
		// max card equals the candidate count, all elements allowed above
		return layer[n-1]
	}

	if cr == r {
		// only one single layer
		vals.Last()
		t, f := bddone, bddone
		for i := 0; i < n; i++ {
			col := vals.Min()
			if i == 0 {
				t = bddzero
				f = bddone
			} else {
				t = layer[i-1]
				if i > n-cl-1 { // connect lower layer
					f = layer[i]
				}
			}
			both := m.ite(y.Element(col-ymin), t, f)
			layer[i] = m.ite(x.Element(col-xmin), both, f)
			vals.Prev()
			if !vals.Ok() {
				break
			}
		}
		return layer[n-1]
	}

	// connection layer between cl and cr
	vals.Last()
	{
		t, f := bddone, bddone
		for i := 0; i < n; i++ {
			col := vals.Min()
			if i == 0 {
				t = bddzero
			} else {
				t = layer[i-1]
				if i > n-cl-1 && cl > 0 { // connect lower layer, only if cl > 0
					f = layer[i]
				}
			}
			both := m.ite(y.Element(col-ymin), t, f)
			layer[i] = m.ite(x.Element(col-xmin), both, f)
			vals.Prev()
			if !vals.Ok() {
				break
			}
		}
	}

	// the remaining diagonals for cr
	vals.Last()
	vals.Prev()
	for ; vals.Ok(); vals.Prev() {
		pos := vals.Index()
		for i := 0; i < n; i++ {
			col := vals.Min()
			t := bddzero
			if i > 0 {
				t = layer[i-1]
			}
			both := m.And(y.Element(col-ymin), x.Element(col-xmin))
			layer[i] = m.ite(both, t, layer[i])
			vals.Prev()
			if !vals.Ok() {
				break
			}
		}
		if !vals.Ok() {
			break
		}
		vals.Seek(pos)
	}

	return layer[n-1]
}

// Cardconst builds the diagram restricting how many elements of the
// constant candidate set is can be selected by the view x, that is
// cl <= |x ∩ is| <= cr. The set must be a subset of the view's initial
// bound interval. Normalization and
// degenerate cases follow Cardcheck, with the candidate positions taken from
// the values of is instead of the full column block.
func Cardconst(m *Manager, x *View, is IntSet, cl, cr int) Node {
	if m.err != nil {
		return bddzero
	}
	vals := NewValCache(is.Values())
	isize := vals.Size()
	if cl < 0 {
		cl = 0
	}
	if cr > isize {
		cr = isize
	}
	if cl > isize || cl > cr {
		return bddzero
	}
	r := isize - 1
	n := cr + 1
	xoff, xmin := x.offset, x.lubMin
	m.logger.Debug("cardconst",
		zap.Int("isize", isize),
		zap.Int("cl", cl),
		zap.Int("cr", cr))
	if cr == 0 {
		empty := bddone
		for ; vals.Ok(); vals.Next() {
			empty = m.And(empty, m.NegPos(xoff+vals.Min()-xmin))
		}
		return empty
	}
	if cl == cr {
		if cr == isize {
			full := bddone
			for ; vals.Ok(); vals.Next() {
				full = m.And(full, m.Pos(xoff+vals.Min()-xmin))
			}
			return full
		}
		return cardeq(m, vals, xoff, xmin, cr, n)
	}
	if cr == isize && cl == 0 {
		return bddone
	}
	return cardlqgq(m, vals, xoff, xmin, cl, cr, n, r)
}
