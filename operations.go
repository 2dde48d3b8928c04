// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "sort"

// Ite (if-then-else) computes the diagram of the formula [f.g + !f.h]. All
// the other Boolean connectives are derived from it.
func (m *Manager) Ite(f, g, h Node) Node {
	if m.err != nil {
		return bddzero
	}
	return m.ite(f, g, h)
}

func (m *Manager) ite(f, g, h Node) Node {
	// terminal cases
	switch {
	case f == bddone:
		return g
	case f == bddzero:
		return h
	case g == h:
		return g
	case g == bddone && h == bddzero:
		return f
	case g == bddzero && h == bddone:
		return m.not(f)
	}
	key := [3]Node{f, g, h}
	if res, ok := m.itecache[key]; ok {
		return res
	}
	v := min3(m.level(f), m.level(g), m.level(h))
	low := m.ite(m.iteLow(f, v), m.iteLow(g, v), m.iteLow(h, v))
	high := m.ite(m.iteHigh(f, v), m.iteHigh(g, v), m.iteHigh(h, v))
	res := m.makenode(v, low, high)
	m.itecache[key] = res
	return res
}

// iteLow returns the low branch of n if v is its level, and n otherwise. It
// gives the cofactor of n at the topmost level among the three ite operands.
func (m *Manager) iteLow(n Node, v int32) Node {
	if m.level(n) == v {
		return m.low(n)
	}
	return n
}

func (m *Manager) iteHigh(n Node, v int32) Node {
	if m.level(n) == v {
		return m.high(n)
	}
	return n
}

func min3(x, y, z int32) int32 {
	if x <= y {
		if x <= z {
			return x
		}
		return z
	}
	if y <= z {
		return y
	}
	return z
}

// not computes the negation of n. Results are memoized in the ite cache
// under the key (n, 0, 1), the ite form of the negation.
func (m *Manager) not(n Node) Node {
	if n < 2 {
		return 1 - n
	}
	key := [3]Node{n, bddzero, bddone}
	if res, ok := m.itecache[key]; ok {
		return res
	}
	res := m.makenode(m.level(n), m.not(m.low(n)), m.not(m.high(n)))
	m.itecache[key] = res
	return res
}

// Not returns the negation of n.
func (m *Manager) Not(n Node) Node {
	if m.err != nil {
		return bddzero
	}
	return m.not(n)
}

// And returns the conjunction of its arguments, and the true node when called
// without arguments.
func (m *Manager) And(n ...Node) Node {
	if m.err != nil {
		return bddzero
	}
	res := bddone
	for _, d := range n {
		res = m.ite(res, d, bddzero)
	}
	return res
}

// Or returns the disjunction of its arguments, and the false node when called
// without arguments.
func (m *Manager) Or(n ...Node) Node {
	if m.err != nil {
		return bddzero
	}
	res := bddzero
	for _, d := range n {
		res = m.ite(res, bddone, d)
	}
	return res
}

// Makeset returns the cube, the conjunction of positive literals, of the
// given table columns. Cubes are the variable sets consumed by Exist.
func (m *Manager) Makeset(cols []int) Node {
	if m.err != nil {
		return bddzero
	}
	res := bddone
	for _, c := range cols {
		res = m.ite(res, m.Pos(c), bddzero)
	}
	return res
}

// Scanset returns the table columns found in the cube varset, in increasing
// column order, or nil for a constant.
func (m *Manager) Scanset(varset Node) []int {
	if varset < 2 {
		return nil
	}
	var res []int
	for i := varset; i > 1; i = m.high(i) {
		res = append(res, m.colAt(m.level(i)))
	}
	sort.Ints(res)
	return res
}

// Exist returns the existential quantification of n with respect to the
// columns in the cube varset.
func (m *Manager) Exist(n, varset Node) Node {
	if m.err != nil {
		return bddzero
	}
	if varset < 2 || n < 2 {
		return n
	}
	quant := make(map[int32]bool)
	last := int32(-1)
	for i := varset; i > 1; i = m.high(i) {
		lv := m.level(i)
		quant[lv] = true
		if lv > last {
			last = lv
		}
	}
	memo := make(map[Node]Node)
	return m.exist(n, quant, last, memo)
}

func (m *Manager) exist(n Node, quant map[int32]bool, last int32, memo map[Node]Node) Node {
	if n < 2 || m.level(n) > last {
		return n
	}
	if res, ok := memo[n]; ok {
		return res
	}
	low := m.exist(m.low(n), quant, last, memo)
	high := m.exist(m.high(n), quant, last, memo)
	var res Node
	if quant[m.level(n)] {
		res = m.ite(low, bddone, high)
	} else {
		res = m.makenode(m.level(n), low, high)
	}
	memo[n] = res
	return res
}

// AndExist returns Exist(And(l, r), varset), the relational-product step of
// the propagation framework.
func (m *Manager) AndExist(l, r, varset Node) Node {
	return m.Exist(m.And(l, r), varset)
}

// Existquant existentially quantifies the contiguous column range
// [low..high] out of p. An empty range returns p unchanged.
func (m *Manager) Existquant(p Node, low, high int) Node {
	if m.err != nil {
		return bddzero
	}
	if high < low {
		return p
	}
	cols := make([]int, 0, high-low+1)
	for c := low; c <= high; c++ {
		cols = append(cols, c)
	}
	return m.Exist(p, m.Makeset(cols))
}

// Allnodes applies function f over all the nodes accessible from the nodes
// in n, or all the active nodes if no parameter is given. The parameters of f
// are the handle, level, and branches of each node. The two constants are
// reported first. The iteration stops and returns the first non-nil error
// reported by f.
func (m *Manager) Allnodes(f func(id Node, level int32, low, high Node) error, n ...Node) error {
	if err := f(bddzero, _TERMLVL, 0, 0); err != nil {
		return err
	}
	if err := f(bddone, _TERMLVL, 1, 1); err != nil {
		return err
	}
	if len(n) == 0 {
		for i := Node(2); i < Node(len(m.nodes)); i++ {
			if err := f(i, m.level(i), m.low(i), m.high(i)); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[Node]bool)
	stack := append([]Node{}, n...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v < 2 || seen[v] {
			continue
		}
		seen[v] = true
		if err := f(v, m.level(v), m.low(v), m.high(v)); err != nil {
			return err
		}
		stack = append(stack, m.low(v), m.high(v))
	}
	return nil
}
