// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "go.uber.org/zap"

// View is the diagram-side image of one set variable: a block of consecutive
// table columns, one per candidate element of the initial upper bound
// interval, together with the variable's initial bounds and its current
// domain diagram. Views are created by NewView and their column geometry is
// immutable afterwards; only the domain diagram evolves, through Constrain.
//
// The initial domain diagram is built on first access (Dom or Constrain), so
// that Varorder can still install the variable order after the views of a
// propagator have been created.
type View struct {
	m       *Manager
	offset  int
	width   int
	lubMin  int
	lubMax  int
	glb     IntSet
	lub     IntSet
	cardMin int
	cardMax int
	label   string
	dom     Node
	built   bool
}

// NewView validates a set-variable specification and allocates its column
// block in the manager's table: one column per value of the interval spanned
// by the upper bound lub. The initial domain diagram asserts the required
// elements of glb, negates the values of the interval excluded from lub, and
// conjoins the cardinality restriction; it is built lazily, on the first
// call to Dom or Constrain. The label tags consistency errors.
func NewView(m *Manager, glb, lub IntSet, cardMin, cardMax int, label string) (*View, error) {
	if err := CheckConsistency(glb, lub, cardMin, cardMax, label); err != nil {
		return nil, err
	}
	x := &View{m: m, glb: glb, lub: lub, cardMin: cardMin, cardMax: cardMax, label: label}
	if lub.IsEmpty() {
		// no columns; the empty set is the only candidate value
		x.dom = m.From(cardMin == 0)
		x.built = true
		return x, nil
	}
	x.lubMin = lub.Min()
	x.lubMax = lub.Max()
	x.width = x.lubMax - x.lubMin + 1
	x.offset = m.alloc(x.width)
	m.logger.Debug("view created",
		zap.String("label", label),
		zap.Int("offset", x.offset),
		zap.Int("width", x.width))
	return x, m.Error()
}

// Offset returns the first table column of the view's block.
func (x *View) Offset() int {
	return x.offset
}

// TableWidth returns the number of table columns of the view's block.
func (x *View) TableWidth() int {
	return x.width
}

// InitialLubMin returns the smallest element of the initial upper bound.
func (x *View) InitialLubMin() int {
	return x.lubMin
}

// InitialLubMax returns the largest element of the initial upper bound.
func (x *View) InitialLubMax() int {
	return x.lubMax
}

// Element returns the membership literal for position k in the view's block,
// the diagram true exactly when element lubMin+k is in the set.
func (x *View) Element(k int) Node {
	return x.m.Pos(x.offset + k)
}

// ElementNeg returns the negated membership literal for position k.
func (x *View) ElementNeg(k int) Node {
	return x.m.NegPos(x.offset + k)
}

func (x *View) build() {
	if x.built {
		return
	}
	x.built = true
	m := x.m
	x.dom = m.True()
	for it := x.glb.Values(); it.Ok(); it.Next() {
		x.dom = m.And(x.dom, x.Element(it.Val()-x.lubMin))
	}
	for v := x.lubMin; v <= x.lubMax; v++ {
		if !x.lub.Contains(v) {
			x.dom = m.And(x.dom, x.ElementNeg(v-x.lubMin))
		}
	}
	x.dom = m.And(x.dom, Cardcheck(m, x.offset, x.width, x.cardMin, x.cardMax))
	m.logger.Debug("initial domain built", zap.String("label", x.label))
}

// Dom returns the view's current domain diagram.
func (x *View) Dom() Node {
	x.build()
	return x.dom
}

// Constrain conjoins a restriction onto the view's domain diagram.
func (x *View) Constrain(n Node) {
	x.build()
	x.dom = x.m.And(x.dom, n)
}
