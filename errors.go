// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrFailedDomain reports a variable specification that is structurally
// well-formed but unsatisfiable or self-contradictory, like a required
// element outside the candidate interval or crossed cardinality bounds.
var ErrFailedDomain = errors.New("variable domain failed")

// ErrOutOfRange reports a variable specification that exceeds the global
// representation limits on element values or cardinality.
var ErrOutOfRange = errors.New("variable out of range")

// errTable is the manager status after an internal misuse, like asking for
// the literal of a column that was never allocated.
var errTable = errors.New("table error")

// Error returns the first error encountered by the manager, or nil. Once the
// status is set, every later diagram construction returns the false node and
// keeps the status unchanged.
func (m *Manager) Error() error {
	return m.err
}

// seterror records an error status on the manager and returns the false
// node, so that call sites can both set and return in one statement. The
// first error sticks.
func (m *Manager) seterror(format string, a ...interface{}) Node {
	if m.err == nil {
		m.err = fmt.Errorf("%w: %s", errTable, fmt.Sprintf(format, a...))
		m.logger.Error("manager error", zap.Error(m.err))
	}
	return bddzero
}
