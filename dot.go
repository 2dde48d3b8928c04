// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

import (
	"fmt"
	"io"
	"os"
)

// PrintDot writes a graph-like description of the diagrams rooted at the
// nodes in n, in Graphviz dot format, with nodes labeled by their table
// column. Dotted edges are low (false) branches.
func (m *Manager) PrintDot(w io.Writer, n ...Node) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	err := m.Allnodes(func(id Node, level int32, low, high Node) error {
		if id < 2 {
			_, err := fmt.Fprintf(w, "%d [shape=box, label=\"%d\", style=filled, height=0.3, width=0.3];\n", id, id)
			return err
		}
		if _, err := fmt.Fprintf(w, "%d [label=\"c%d\"];\n", id, m.colAt(level)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d -> %d [style=dotted];\n", id, low); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%d -> %d [style=filled];\n", id, high)
		return err
	}, n...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "}")
	return err
}

// FPrintDot is like PrintDot but writes to a file.
func (m *Manager) FPrintDot(filename string, n ...Node) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.PrintDot(f, n...)
}
