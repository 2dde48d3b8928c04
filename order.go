// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "go.uber.org/zap"

// Varorder installs the constraint variable order of Hawkins, Lagoon and
// Stuckey on the manager: columns of the views in x at the same relative
// depth are placed next to each other, depth layer by depth layer, so that
// columns compared or intersected together sit close in every diagram.
// Columns below the scope keep their identity position, and so do the
// columns left over above it.
//
// When a second array y is given, each of its views contributes the column
// covering the same element value right after the x columns of the layer.
// Views of the same array must share their initial bounds, and the bounds of
// the y views must be subranges of the x bounds.
//
// The order must be installed before any composite diagram is built, see
// SetOrder.
func Varorder(m *Manager, x []*View, y ...*View) error {
	if len(x) == 0 {
		m.seterror("empty view array in call to Varorder")
		return m.err
	}
	varInTab := m.Allocated()

	minOffset := x[0].Offset()
	maxWidth := x[0].TableWidth()
	for _, xi := range x {
		if xi.Offset() < minOffset {
			minOffset = xi.Offset()
		}
		if xi.TableWidth() > maxWidth {
			maxWidth = xi.TableWidth()
		}
	}

	order := make([]int, varInTab)

	// columns below the scope of the constraint keep their position
	c := 0
	for i := 0; i < minOffset; i++ {
		order[i] = i
		c++
	}

	// interleave the columns that lie in the scope
	for f := 0; f < maxWidth; f++ {
		for _, xi := range x {
			if cur := xi.Offset() + f; cur < xi.Offset()+xi.TableWidth() {
				order[c] = cur
				c++
			}
		}
		for _, yi := range y {
			if x[0].InitialLubMin()+f >= yi.InitialLubMin() &&
				x[0].InitialLubMin()+f <= yi.InitialLubMax() {
				xyshift := yi.InitialLubMin() - x[0].InitialLubMin()
				if cur := yi.Offset() + f - xyshift; cur < yi.Offset()+yi.TableWidth() {
					order[c] = cur
					c++
				}
			}
		}
	}

	// remaining larger columns keep their position
	for i := c; i < varInTab; i++ {
		order[i] = i
	}

	m.logger.Debug("variable order computed",
		zap.Int("views", len(x)+len(y)),
		zap.Int("scope", c-minOffset))
	return m.SetOrder(order)
}
