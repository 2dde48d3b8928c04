// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"fmt"

	"go.uber.org/zap"
)

// Node is a reference to a vertex in the manager's arena. It is the atomic
// unit of interactions and computations over diagrams. Nodes are canonical:
// two semantically equal diagrams always have equal handles.
type Node = int32

// bddzero and bddone are the handles of the two constant functions. They are
// always kept at index 0 and 1 of the arena.
const (
	bddzero Node = 0
	bddone  Node = 1
)

// _MAXVAR is the maximal number of levels (so also the max number of columns
// in the shared table). We keep the same limit as in our kernel's ancestry,
// the first 21 bits of an int32.
const _MAXVAR int32 = 0x1FFFFF

// _TERMLVL is the level stored on the two terminal nodes. It is higher than
// any legal level, so the cofactor computations in ite and exist never
// descend through a constant.
const _TERMLVL int32 = 0x7FFFFFFF

// mnode is one vertex of the shared diagram table: a variable level and the
// handles of the false and true branches. The struct is comparable, so it
// doubles as the key of the unicity table.
type mnode struct {
	level int32
	low   Node
	high  Node
}

// Manager owns the shared state every diagram construction goes through: the
// node arena, the unicity table used for reduction/sharing, the operation
// caches, and the installed diagram-variable order. A Manager is
// single-threaded and must not be shared between concurrently running
// propagators.
type Manager struct {
	nodes     []mnode          // arena of all nodes; constants at index 0 and 1
	unique    map[mnode]Node   // unicity table, associates each triplet to a single node
	itecache  map[[3]Node]Node // cache for ite results
	varnum    int32            // number of levels; equals the number of allocated columns
	varset    [][2]Node        // positive and negative literal for each level
	seq       []int            // installed order, seq[position] = column; nil means identity
	position  []int            // inverse of seq, column -> position; nil means identity
	allocated int              // number of table columns handed out to views
	logger    *zap.Logger
	err       error
}

// New returns an empty manager. Columns are allocated by NewView; the arena
// and caches grow on demand from the Nodesize and Cachesize hints.
func New(options ...func(*configs)) *Manager {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	m := &Manager{
		nodes:    make([]mnode, 2, c.nodesize),
		unique:   make(map[mnode]Node, c.nodesize),
		itecache: make(map[[3]Node]Node, c.cachesize),
		logger:   c.logger,
	}
	m.nodes[0] = mnode{level: _TERMLVL, low: 0, high: 0}
	m.nodes[1] = mnode{level: _TERMLVL, low: 1, high: 1}
	return m
}

// True returns the constant true diagram.
func (m *Manager) True() Node {
	return bddone
}

// False returns the constant false diagram.
func (m *Manager) False() Node {
	return bddzero
}

// From returns a (constant) Node from a boolean value.
func (m *Manager) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Equal tests equivalence between nodes. Handles are canonical so this is
// plain equality; the method only exists to keep call sites readable.
func (m *Manager) Equal(n1, n2 Node) bool {
	return n1 == n2
}

func (m *Manager) level(n Node) int32 {
	return m.nodes[n].level
}

func (m *Manager) low(n Node) Node {
	return m.nodes[n].low
}

func (m *Manager) high(n Node) Node {
	return m.nodes[n].high
}

// makenode is the only constructor of vertices. It applies the two reduction
// rules (redundant test, shared subgraph) so the arena only ever contains
// canonical nodes.
func (m *Manager) makenode(level int32, low, high Node) Node {
	if low == high {
		return low
	}
	key := mnode{level: level, low: low, high: high}
	if res, ok := m.unique[key]; ok {
		return res
	}
	res := Node(len(m.nodes))
	m.nodes = append(m.nodes, key)
	m.unique[key] = res
	return res
}

// alloc reserves a block of width consecutive table columns and returns its
// offset, growing the set of levels and their literal pairs accordingly.
func (m *Manager) alloc(width int) int {
	offset := m.allocated
	if int32(offset+width) > _MAXVAR {
		m.seterror("table overflow: cannot allocate %d more columns", width)
		return offset
	}
	m.allocated += width
	for k := int32(m.varnum); k < int32(m.allocated); k++ {
		v0 := m.makenode(k, 0, 1)
		v1 := m.makenode(k, 1, 0)
		m.varset = append(m.varset, [2]Node{v0, v1})
	}
	m.varnum = int32(m.allocated)
	return offset
}

// Allocated returns the number of table columns handed out so far.
func (m *Manager) Allocated() int {
	return m.allocated
}

// SetOrder installs the diagram-variable order used by every later
// construction: seq[position] gives the table column placed at that position
// (level). The order is write-once per propagator setup; installing one after
// composite diagrams have been built, or installing a sequence that is not a
// permutation of the allocated columns, sets the manager error.
func (m *Manager) SetOrder(seq []int) error {
	if len(seq) != m.allocated {
		m.seterror("order length %d does not match %d allocated columns", len(seq), m.allocated)
		return m.err
	}
	// the arena must hold nothing but the terminals and the literal pairs,
	// diagrams built against the previous order would be corrupted
	if composite := len(m.nodes) - 2 - 2*m.allocated; composite > 0 {
		m.seterror("order installed after %d composite nodes were built", composite)
		return m.err
	}
	position := make([]int, m.allocated)
	for i := range position {
		position[i] = -1
	}
	for lv, col := range seq {
		if col < 0 || col >= m.allocated || position[col] != -1 {
			m.seterror("order is not a permutation: column %d at position %d", col, lv)
			return m.err
		}
		position[col] = lv
	}
	m.seq = append([]int(nil), seq...)
	m.position = position
	m.logger.Debug("installed variable order",
		zap.Int("columns", m.allocated))
	return nil
}

// posOf maps a table column to its level under the installed order.
func (m *Manager) posOf(col int) int {
	if m.position == nil {
		return col
	}
	return m.position[col]
}

// colAt maps a level back to its table column.
func (m *Manager) colAt(level int32) int {
	if m.seq == nil {
		return int(level)
	}
	return m.seq[level]
}

// Pos returns the elementary diagram for an absolute table column: the
// positive literal of the column's position under the installed order.
func (m *Manager) Pos(col int) Node {
	if col < 0 || col >= m.allocated {
		return m.seterror("unknown column (%d) in call to Pos", col)
	}
	return m.varset[m.posOf(col)][0]
}

// NegPos returns the negative literal for an absolute table column. See Pos.
func (m *Manager) NegPos(col int) Node {
	if col < 0 || col >= m.allocated {
		return m.seterror("unknown column (%d) in call to NegPos", col)
	}
	return m.varset[m.posOf(col)][1]
}

// Stats returns information about the manager.
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Columns:    %d\n", m.allocated)
	res += fmt.Sprintf("Produced:   %d\n", len(m.nodes)-2)
	res += fmt.Sprintf("Ite cache:  %d\n", len(m.itecache))
	return res
}
