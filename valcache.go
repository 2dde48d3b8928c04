// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddset

// ValCache materializes a value sequence into an array and replaces it with
// a replayable cursor: unlike a plain ValueSeq it can also move backwards,
// report its position, and jump back to a saved position. The layered
// builders lean on this to sweep the same candidate values once per diagonal.
type ValCache struct {
	r []int
	c int // cursor; valid when 0 <= c < len(r)
}

// NewValCache drains the iterator and returns a cache positioned on the
// first (smallest) value.
func NewValCache(i ValueSeq) *ValCache {
	v := &ValCache{}
	for ; i.Ok(); i.Next() {
		v.r = append(v.r, i.Val())
	}
	return v
}

// Ok reports whether the cursor points at a value.
func (v *ValCache) Ok() bool {
	return v.c > -1 && v.c < len(v.r)
}

// Next moves the cursor towards larger values.
func (v *ValCache) Next() {
	v.c++
}

// Prev moves the cursor towards smaller values.
func (v *ValCache) Prev() {
	v.c--
}

// Reset places the cursor on the first (smallest) value.
func (v *ValCache) Reset() {
	v.c = 0
}

// Last places the cursor on the last (largest) value.
func (v *ValCache) Last() {
	v.c = len(v.r) - 1
}

// Finish parks the cursor outside the sequence, so that Ok is false until
// the next Reset, Last or Seek.
func (v *ValCache) Finish() {
	v.c = -1
}

// Val returns the value under the cursor.
func (v *ValCache) Val() int {
	return v.r[v.c]
}

// Min returns the value under the cursor. The cursor stands for a
// degenerate range of width one, so Min, Max and Val coincide.
func (v *ValCache) Min() int {
	return v.r[v.c]
}

// Max returns the value under the cursor.
func (v *ValCache) Max() int {
	return v.r[v.c]
}

// Width returns the width of the range under the cursor, always 1.
func (v *ValCache) Width() int {
	return 1
}

// Size returns the number of cached values.
func (v *ValCache) Size() int {
	return len(v.r)
}

// Index returns the cursor position.
func (v *ValCache) Index() int {
	return v.c
}

// Seek restores the cursor to a position previously obtained with Index.
func (v *ValCache) Seek(i int) {
	v.c = i
}
