// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "go.uber.org/zap"

// Cardcheck builds the diagram accepting exactly the assignments selecting
// between cl and cr of the xtab consecutive table columns starting at
// offset. The bounds are normalized first: cr is clamped to xtab, and an
// unsatisfiable combination returns the false diagram. The empty, full,
// equality and unrestricted cases get dedicated constructions; the general
// range goes through the layered builder.
func Cardcheck(m *Manager, offset, xtab, cl, cr int) Node {
	if m.err != nil {
		return bddzero
	}
	if cl < 0 {
		cl = 0
	}
	if cr > xtab {
		cr = xtab
	}
	if cl > xtab || cl > cr {
		return bddzero
	}
	r := xtab - 1 // rightmost column position
	n := cr + 1   // layer size
	vals := NewValCache(Interval(0, r).Values())
	m.logger.Debug("cardcheck",
		zap.Int("offset", offset),
		zap.Int("width", xtab),
		zap.Int("cl", cl),
		zap.Int("cr", cr))
	if cr == 0 { // cl <= cr, build the empty set
		empty := bddone
		for ; vals.Ok(); vals.Next() {
			empty = m.And(empty, m.NegPos(offset+vals.Min()))
		}
		return empty
	}
	if cl == cr {
		if cr == xtab { // build the full set
			full := bddone
			for ; vals.Ok(); vals.Next() {
				full = m.And(full, m.Pos(offset+vals.Min()))
			}
			return full
		}
		return cardeq(m, vals, offset, 0, cr, n)
	}
	if cr == xtab && cl == 0 { // no cardinality restriction
		return bddone
	}
	return cardlqgq(m, vals, offset, 0, cl, cr, n, r)
}

// cardeq builds the diagram for |x| = c over the candidate values in vals,
// where candidate value k selects the table column xoff+k-xmin. Requires
// 0 < c < vals.Size() and n = c+1.
//
// The construction is a layered dynamic program over the candidate values in
// decreasing order: layer[i] accepts the suffixes of the value sequence that
// still select exactly i more elements. The lowest layer is seeded with the
// chain selecting the c highest candidates; every following diagonal is
// processed from a saved cursor position and resumes there, breaking out as
// soon as the cache is exhausted mid-diagonal.
func cardeq(m *Manager, vals *ValCache, xoff, xmin, c, n int) Node {
	layer := make([]Node, n)

	// seed the lowest layer with the c highest candidates
	layer[0] = bddone
	vals.Last()
	for i := 1; i <= c; i++ {
		k := vals.Min()
		layer[i] = m.Pos(xoff + k - xmin)
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
			layer[i] = m.ite(m.Pos(xoff+col-xmin), t, layer[i])
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

// cardlqgq builds the diagram for cl <= |x| <= cr over the candidate values
// in vals, where candidate value k selects the table column xoff+k-xmin.
// Requires cl < cr, cr > 0, cr <= vals.Size(), n = cr+1 and r =
// vals.Size()-1.
//
// The "at least cl" part is grown first, from a seed chain over the cl
// highest candidates, diagonal by diagonal; a diagonal stops early (and the
// whole phase with it) once the remaining candidates cannot reach the "at
// most cr" part anymore. The two parts meet in a single connection layer,
// and the remaining diagonals grow the "at most cr" part to the top.
func cardlqgq(m *Manager, vals *ValCache, xoff, xmin, cl, cr, n, r int) Node {
	layer := make([]Node, n)

	// seed chain TOP v(c) v(c-1) ... v(c-cl+1)
	layer[n-cl-1] = bddone
	vals.Last()
	for i := n - cl; i < n; i++ {
		k := vals.Min()
		layer[i] = m.ite(m.Pos(xoff+k-xmin), layer[i-1], bddzero)
		vals.Prev()
	}

	// start with a shift and build diagonals up to the connection layer;
	// the cache behaves like an array here, positions are saved with Index
	// and restored with Seek across the early-terminating inner loop
	vals.Last()
	vals.Prev()
	for ; vals.Ok(); vals.Prev() {
		pos := vals.Index()
		// cl < cr <= tab  ==>  n - cl > 0
		for i := n - cl; i < n; i++ {
			col := vals.Min()
			t := layer[i-1]
			layer[i] = m.ite(m.Pos(xoff+col-xmin), t, layer[i])
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
			layer[i] = m.ite(m.Pos(xoff+col-xmin), t, f)
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
			layer[i] = m.ite(m.Pos(xoff+col-xmin), t, f)
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
			layer[i] = m.ite(m.Pos(xoff+col-xmin), t, layer[i])
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
