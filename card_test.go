// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCardcheckEnumeration checks the range builder against a straight
// popcount on every assignment, for every cardinality pair on small widths.
// This covers the empty, full, equality, unrestricted and layered cases,
// including clamping of cr past the width.
func TestCardcheckEnumeration(t *testing.T) {
	for w := 1; w <= 5; w++ {
		for cl := 0; cl <= w; cl++ {
			for cr := 0; cr <= w+1; cr++ {
				m := New()
				off := m.alloc(w)
				d := Cardcheck(m, off, w, cl, cr)
				require.NoError(t, m.Error())
				for code := 0; code < 1<<w; code++ {
					count := popcount(code)
					want := count >= cl && count <= cr
					if got := evalNode(m, d, selection(code, w)); got != want {
						t.Fatalf("w=%d cl=%d cr=%d code=%05b: got %v, want %v",
							w, cl, cr, code, got, want)
					}
				}
			}
		}
	}
}

func TestCardcheckDegenerate(t *testing.T) {
	m := New()
	off := m.alloc(3)
	require.Equal(t, bddzero, Cardcheck(m, off, 3, 4, 5), "cl over width is unsatisfiable")
	require.Equal(t, bddzero, Cardcheck(m, off, 3, 2, 1), "crossed bounds are unsatisfiable")
	require.Equal(t, bddone, Cardcheck(m, off, 3, 0, 3), "no restriction")
	require.Equal(t, bddone, Cardcheck(m, off, 3, 0, 7), "cr clamps to the width")
	require.Equal(t, bddone, Cardcheck(m, off, 0, 0, 0), "empty block, empty set")
	require.Equal(t, bddzero, Cardcheck(m, off, 0, 1, 1), "empty block cannot select")
}

// TestCardcheckOffset builds the restriction over a block that does not
// start at column 0 and checks that columns outside the block stay free.
func TestCardcheckOffset(t *testing.T) {
	m := New()
	m.alloc(2)
	off := m.alloc(3)
	require.Equal(t, 2, off)
	d := Cardcheck(m, off, 3, 1, 1)
	for code := 0; code < 1<<5; code++ {
		sel := selection(code, 5)
		count := 0
		for k := 0; k < 3; k++ {
			if sel[off+k] {
				count++
			}
		}
		want := count == 1
		if got := evalNode(m, d, sel); got != want {
			t.Fatalf("code=%05b: got %v, want %v", code, got, want)
		}
	}
}

// TestCardcheckWithOrder repeats the enumeration with a reversing variable
// order installed, since the construction reads literals through it.
func TestCardcheckWithOrder(t *testing.T) {
	w := 4
	m := New()
	off := m.alloc(w)
	require.NoError(t, m.SetOrder([]int{3, 2, 1, 0}))
	d := Cardcheck(m, off, w, 1, 2)
	for code := 0; code < 1<<w; code++ {
		count := popcount(code)
		want := count >= 1 && count <= 2
		if got := evalNode(m, d, selection(code, w)); got != want {
			t.Fatalf("code=%04b: got %v, want %v", code, got, want)
		}
	}
}
