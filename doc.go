// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bddset compiles cardinality and ordering restrictions on finite-domain
set variables into Reduced Ordered Binary Decision Diagrams (ROBDD). It is the
diagram-construction layer of a set-constraint solver: a propagation engine
hands us set-variable views, we hand back canonical diagrams that it can test
and tighten in near-constant time per inference step.

# Basics

A set variable over the interval [lubMin..lubMax] is encoded as a block of
Boolean "columns" in a shared table, one column per candidate element. A
Manager owns the table: the node arena, the unicity (hash-consing) table, and
the installed diagram-variable order. Views are created with NewView, which
validates the variable specification against the global limits, allocates the
column block, and constrains the view's domain diagram with the initial
bounds and cardinality.

Most operations return a Node; that is an integer handle into the manager's
arena, with the convention that 1 (respectively 0) is the handle of the
constant function True (respectively False). Handles are canonical, so two
semantically equal diagrams always compare equal.

The builders are the heart of the package. Cardcheck, Extcardcheck and
Cardconst produce diagrams for "cl <= |X| <= cr" over a single variable, over
the intersection of two variables, and over a variable against a constant
candidate set. Lexlt, Lexlq, Lexltrev and Lexlqrev produce digit-by-digit
lexicographic comparators between two column blocks. Getcardbounds reads the
realizable cardinality bounds back out of a built diagram, and Quantify hides
a view's columns from a diagram before it is combined with other constraints.

# Variable order

Diagram size is highly sensitive to the variable order. Varorder installs the
order of Hawkins, Lagoon and Stuckey for one or two arrays of views: columns
at the same relative depth across variables are interleaved before columns at
the next depth, so that "synchronized" columns of variables that are compared
or intersected sit next to each other. The order is installed once per
propagator setup, before any composite diagram is built against it, and is
read-only afterwards.

# Resource model

Everything is single-threaded and synchronous. A Manager must not be shared
between concurrently running propagators. There is no garbage collection and
no reference counting; the arena lives exactly as long as the propagator's
table encoding and is released as a whole. The library is written in pure Go,
without the need for CGo; the only dependency outside the standard library is
the zap logger used for optional construction diagnostics.
*/
package bddset
