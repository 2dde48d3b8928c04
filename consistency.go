// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import "fmt"

// Global domain limits. Element values and cardinalities must stay below the
// number of table columns a manager can ever allocate, see _MAXVAR.
const (
	// LimitMax is the largest representable set element.
	LimitMax = 1 << 20
	// LimitMin is the smallest representable set element.
	LimitMin = -LimitMax
	// LimitCard is the largest representable cardinality bound.
	LimitCard = 1 << 20
)

// CheckConsistency validates a set-variable specification, given by its
// lower-bound set glb, upper-bound set lub, and cardinality bounds, before
// any diagram is built from it. Violations are reported as ErrFailedDomain
// (logically inconsistent bounds) or ErrOutOfRange (bounds exceeding the
// global limits), wrapped with the caller-supplied label. The checks run in
// a fixed order and the first violation wins.
func CheckConsistency(glb, lub IntSet, cardMin, cardMax int, label string) error {
	if !glb.IsEmpty() {
		if lub.IsEmpty() {
			return fmt.Errorf("%s: lower bound requires elements but upper bound is empty: %w", label, ErrFailedDomain)
		}
		if glb.Min() < LimitMin || glb.Max() > LimitMax {
			return fmt.Errorf("%s: lower bound exceeds representation limits: %w", label, ErrOutOfRange)
		}
		if glb.Min() < lub.Min() || glb.Max() > lub.Max() {
			return fmt.Errorf("%s: lower bound outside the upper bound interval: %w", label, ErrFailedDomain)
		}
	}
	if !lub.IsEmpty() {
		if lub.Min() < LimitMin || lub.Max() > LimitMax {
			return fmt.Errorf("%s: upper bound exceeds representation limits: %w", label, ErrOutOfRange)
		}
	}
	if cardMax < 0 {
		return fmt.Errorf("%s: negative maximum cardinality: %w", label, ErrFailedDomain)
	}
	if cardMax > LimitCard {
		return fmt.Errorf("%s: maximum cardinality exceeds representation limits: %w", label, ErrOutOfRange)
	}
	if cardMin > cardMax || cardMin < 0 {
		return fmt.Errorf("%s: inconsistent cardinality bounds [%d, %d]: %w", label, cardMin, cardMax, ErrFailedDomain)
	}
	return nil
}
