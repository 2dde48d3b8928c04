// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// evalNode evaluates the diagram rooted at n under a full assignment, where
// sel[col] tells whether table column col is selected.
func evalNode(m *Manager, n Node, sel []bool) bool {
	for n > 1 {
		if sel[m.colAt(m.level(n))] {
			n = m.high(n)
		} else {
			n = m.low(n)
		}
	}
	return n == bddone
}

// selection decodes the w low-order bits of code into a column assignment.
func selection(code, w int) []bool {
	sel := make([]bool, w)
	for k := 0; k < w; k++ {
		sel[k] = code&(1<<k) != 0
	}
	return sel
}

func popcount(code int) int {
	c := 0
	for ; code != 0; code &= code - 1 {
		c++
	}
	return c
}

func TestIteEquivalences(t *testing.T) {
	m := New()
	m.alloc(3)
	a, b, c := m.Pos(0), m.Pos(1), m.Pos(2)

	f := m.Ite(a, b, c)
	require.Equal(t, f, m.Ite(a, b, c), "ite results must be canonical")
	require.Equal(t, a, m.Ite(a, bddone, bddzero))
	require.Equal(t, m.Not(a), m.Ite(a, bddzero, bddone))
	require.Equal(t, a, m.Not(m.Not(a)))
	require.Equal(t, m.And(a, b), m.And(b, a))
	require.Equal(t, m.Or(a, b), m.Or(b, a))
	require.Equal(t, m.Not(m.And(a, b)), m.Or(m.Not(a), m.Not(b)))
	require.Equal(t, bddzero, m.And(a, m.Not(a)))
	require.Equal(t, bddone, m.Or(a, m.Not(a)))
	require.NoError(t, m.Error())
}

func TestMakenodeReduction(t *testing.T) {
	m := New()
	m.alloc(2)
	a := m.Pos(0)
	require.Equal(t, a, m.makenode(0, m.low(a), m.high(a)), "shared subgraphs must be merged")
	require.Equal(t, bddone, m.makenode(0, bddone, bddone), "redundant tests must be removed")
}

func TestSetOrder(t *testing.T) {
	t.Run("permutation", func(t *testing.T) {
		m := New()
		m.alloc(4)
		require.NoError(t, m.SetOrder([]int{3, 1, 0, 2}))
		require.Equal(t, 2, m.posOf(0))
		require.Equal(t, 3, m.colAt(0))
		for col := 0; col < 4; col++ {
			require.Equal(t, col, m.colAt(int32(m.posOf(col))))
		}
	})
	t.Run("wrong length", func(t *testing.T) {
		m := New()
		m.alloc(3)
		require.Error(t, m.SetOrder([]int{0, 1}))
	})
	t.Run("not a permutation", func(t *testing.T) {
		m := New()
		m.alloc(3)
		require.Error(t, m.SetOrder([]int{0, 1, 1}))
	})
	t.Run("after composite nodes", func(t *testing.T) {
		m := New()
		m.alloc(3)
		m.And(m.Pos(0), m.Pos(1))
		require.Error(t, m.SetOrder([]int{0, 1, 2}))
	})
}

func TestMakesetScanset(t *testing.T) {
	m := New()
	m.alloc(5)
	require.NoError(t, m.SetOrder([]int{4, 2, 0, 1, 3}))
	cube := m.Makeset([]int{3, 0, 4})
	if diff := cmp.Diff([]int{0, 3, 4}, m.Scanset(cube)); diff != "" {
		t.Errorf("scanset mismatch (-want +got):\n%s", diff)
	}
	require.Nil(t, m.Scanset(bddone))
	require.NoError(t, m.Error())
}

func TestExist(t *testing.T) {
	m := New()
	m.alloc(3)
	a, b, c := m.Pos(0), m.Pos(1), m.Pos(2)
	f := m.And(a, b, c)
	require.Equal(t, m.And(b, c), m.Exist(f, m.Makeset([]int{0})))
	require.Equal(t, bddone, m.Exist(f, m.Makeset([]int{0, 1, 2})))
	g := m.Or(m.And(a, b), m.And(m.Not(a), c))
	require.Equal(t, m.Or(b, c), m.Exist(g, m.Makeset([]int{0})))
	require.Equal(t, g, m.Exist(g, bddone), "quantifying nothing is the identity")
	require.Equal(t, m.Or(b, c), m.AndExist(g, bddone, m.Makeset([]int{0})))
	require.Equal(t, m.Or(b, c), m.Existquant(g, 0, 0))
	require.NoError(t, m.Error())
}

func TestAllnodes(t *testing.T) {
	m := New()
	m.alloc(2)
	f := m.And(m.Pos(0), m.Pos(1))
	count := 0
	err := m.Allnodes(func(id Node, level int32, low, high Node) error {
		count++
		return nil
	}, f)
	require.NoError(t, err)
	// two terminals, the literal for column 1, and the root
	require.Equal(t, 4, count)
}
