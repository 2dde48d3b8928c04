// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "testing"

// digits reads a block of width columns as a number, msdFirst giving which
// end is the most significant digit.
func digits(sel []bool, off, width int, msdFirst bool) int {
	v := 0
	for k := 0; k < width; k++ {
		pos := off + k
		if !msdFirst {
			pos = off + width - 1 - k
		}
		v <<= 1
		if sel[pos] {
			v |= 1
		}
	}
	return v
}

// TestLexEnumeration checks the four comparators on two 2-digit blocks
// against direct numeric comparison, for every assignment pair.
func TestLexEnumeration(t *testing.T) {
	const width = 2
	m := New()
	xoff := m.alloc(width)
	yoff := m.alloc(width)

	lt := Lexlt(m, xoff, yoff, width, width)
	lq := Lexlq(m, xoff, yoff, width, width)
	ltrev := Lexltrev(m, xoff, yoff, width, width)
	lqrev := Lexlqrev(m, xoff, yoff, width, width)

	for code := 0; code < 1<<(2*width); code++ {
		sel := selection(code, 2*width)
		vx := digits(sel, xoff, width, true)
		vy := digits(sel, yoff, width, true)
		rx := digits(sel, xoff, width, false)
		ry := digits(sel, yoff, width, false)
		checks := []struct {
			name string
			d    Node
			want bool
		}{
			{"lt", lt, vx < vy},
			{"lq", lq, vx <= vy},
			{"ltrev", ltrev, rx < ry},
			{"lqrev", lqrev, rx <= ry},
		}
		for _, c := range checks {
			if got := evalNode(m, c.d, sel); got != c.want {
				t.Errorf("%s code=%04b: got %v, want %v", c.name, code, got, c.want)
			}
		}
	}
}

func TestLexDegenerate(t *testing.T) {
	m := New()
	xoff := m.alloc(2)
	yoff := m.alloc(2)
	// zero digits left to compare: the blocks are equal
	if Lexlt(m, xoff, yoff, 2, 0) != bddzero {
		t.Error("strict comparison over no digits must be false")
	}
	if Lexlq(m, xoff, yoff, 2, 0) != bddone {
		t.Error("non-strict comparison over no digits must be true")
	}
}

// TestLexStrictVsEqual checks lq = lt + equality, digit for digit.
func TestLexStrictVsEqual(t *testing.T) {
	const width = 3
	m := New()
	xoff := m.alloc(width)
	yoff := m.alloc(width)
	eq := m.True()
	for k := 0; k < width; k++ {
		xk, yk := m.Pos(xoff+k), m.Pos(yoff+k)
		eq = m.And(eq, m.Ite(xk, yk, m.Not(yk)))
	}
	lt := Lexlt(m, xoff, yoff, width, width)
	lq := Lexlq(m, xoff, yoff, width, width)
	if lq != m.Or(lt, eq) {
		t.Error("lq must be the disjunction of lt and equality")
	}
}
