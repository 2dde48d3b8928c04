// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

// Quantify existentially quantifies every column of the view x out of the
// predicate diagram p, returning a diagram over the remaining columns. It is
// the cleanup step after building through auxiliary variables: a predicate
// produced with the help of an intermediate view is restated over the real
// views before being combined with other constraints.
func Quantify(m *Manager, p Node, x *View) Node {
	if m.err != nil {
		return bddzero
	}
	return m.Existquant(p, x.offset, x.offset+x.width-1)
}
