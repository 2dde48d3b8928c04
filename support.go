// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

// Bddvars returns the cube of all table columns the diagram d depends on.
func (m *Manager) Bddvars(d Node) Node {
	if m.err != nil {
		return bddzero
	}
	var cols []int
	seen := make(map[int32]bool)
	m.Allnodes(func(id Node, level int32, low, high Node) error {
		if id > 1 && !seen[level] {
			seen[level] = true
			cols = append(cols, m.colAt(level))
		}
		return nil
	}, d)
	return m.Makeset(cols)
}

// Convhull returns the tightest conjunction of literals implied by d: the
// columns selected on every satisfying assignment appear positively, the
// columns selected on none appear negatively, and the rest are dropped. The
// result is the interval approximation of d, with Convhull(0) = 0.
func (m *Manager) Convhull(d Node) Node {
	if m.err != nil || d == bddzero {
		return bddzero
	}
	hull := bddone
	for _, col := range m.Scanset(m.Bddvars(d)) {
		if m.And(d, m.NegPos(col)) == bddzero {
			hull = m.And(hull, m.Pos(col))
		} else if m.And(d, m.Pos(col)) == bddzero {
			hull = m.And(hull, m.NegPos(col))
		}
	}
	return hull
}
