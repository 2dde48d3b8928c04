// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

// The lexicographic builders compare two blocks of width consecutive table
// columns, starting at xoff and yoff, digit by digit: at each position either
// the digits differ and decide the ordering, or they are equal and the next
// position decides. They are pure functions of the column geometry; no view
// is involved. n is the number of digits still to compare, so a first call
// normally passes n = width.

// Lexlt builds the diagram for x < y in natural digit order, the first
// column being the most significant digit.
func Lexlt(m *Manager, xoff, yoff, width, n int) Node {
	if m.err != nil {
		return bddzero
	}
	return lexrec(m, xoff, yoff, width, n, false, false)
}

// Lexlq builds the diagram for x <= y in natural digit order.
func Lexlq(m *Manager, xoff, yoff, width, n int) Node {
	if m.err != nil {
		return bddzero
	}
	return lexrec(m, xoff, yoff, width, n, true, false)
}

// Lexltrev builds the diagram for x < y comparing from the lowest-order
// digit first, the last column deciding before the ones below it.
func Lexltrev(m *Manager, xoff, yoff, width, n int) Node {
	if m.err != nil {
		return bddzero
	}
	return lexrec(m, xoff, yoff, width, n, false, true)
}

// Lexlqrev builds the diagram for x <= y comparing from the lowest-order
// digit first.
func Lexlqrev(m *Manager, xoff, yoff, width, n int) Node {
	if m.err != nil {
		return bddzero
	}
	return lexrec(m, xoff, yoff, width, n, true, true)
}

// lexrec encodes the digit-by-digit comparator: with xk, yk the digits under
// comparison and rec the comparator over the remaining digits, the result is
// ite(xk, yk.rec, yk + rec). When all digits are equal the base case decides:
// true for the non-strict orders, false for the strict ones.
func lexrec(m *Manager, xoff, yoff, width, n int, eq, rev bool) Node {
	if n <= 0 {
		return m.From(eq)
	}
	k := width - n
	if rev {
		k = n - 1
	}
	xk := m.Pos(xoff + k)
	yk := m.Pos(yoff + k)
	rec := lexrec(m, xoff, yoff, width, n-1, eq, rev)
	return m.ite(xk, m.ite(yk, rec, bddzero), m.ite(yk, bddone, rec))
}
