// Copyright 2025 The Axis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package extents

import (
	"fmt"
	"strings"

	"github.com/axis-ml/axis/internal/dims"
)

// Extents is a fixed-rank tuple of dimension sizes, each either fixed by
// its Pattern or supplied at construction. Only dynamic sizes are stored.
//
// Extents is an immutable value type: there are no mutators, copies are
// independent values, and independent copies may be read from any number
// of goroutines without synchronization.
type Extents[T Index] struct {
	vals dims.Seq[T]
}

// New returns the default extents for p: every dynamic dimension is zero.
func New[T Index](p *Pattern) Extents[T] {
	checkPatternFits[T](p)
	return Extents[T]{vals: dims.NewSeq[T](p)}
}

// Of constructs extents from positional values. The count must equal
// either p's dynamic rank (sizes for the dynamic dimensions only, in
// ascending rank order) or p's full rank (every dimension restated, with
// values at static ranks validated against the tags).
//
// Every value must be non-negative and representable in T; violations
// panic.
func Of[T Index, V Index](p *Pattern, vals ...V) Extents[T] {
	checkPatternFits[T](p)
	if n := len(vals); n == p.Rank() || n == p.RankDynamic() {
		checkRepresentable[T](vals)
	}
	return Extents[T]{vals: dims.SeqFromSlice[T](p, vals)}
}

// FromSlice constructs extents from exactly the dynamic dimension sizes.
// This is the only slice form safe to use without restating the shape;
// supplying a full per-rank list requires FromFullSlice.
func FromSlice[T Index, V Index](p *Pattern, vals []V) Extents[T] {
	checkPatternFits[T](p)
	if len(vals) != p.RankDynamic() {
		panic(fmt.Sprintf("got %d values, want %d (dynamic rank); use FromFullSlice for full shapes", len(vals), p.RankDynamic()))
	}
	checkRepresentable[T](vals)
	return Extents[T]{vals: dims.SeqFromSlice[T](p, vals)}
}

// FromFullSlice constructs extents from a full per-rank size list,
// validating every static dimension against its tag. The dynamic-only form
// is accepted as well.
func FromFullSlice[T Index, V Index](p *Pattern, vals []V) Extents[T] {
	checkPatternFits[T](p)
	if n := len(vals); n == p.Rank() || n == p.RankDynamic() {
		checkRepresentable[T](vals)
	}
	return Extents[T]{vals: dims.SeqFromSlice[T](p, vals)}
}

// Rank returns the number of dimensions. It is a property of the pattern,
// identical for every value built against it.
func (e Extents[T]) Rank() int { return e.vals.Size() }

// RankDynamic returns the number of dynamic dimensions.
func (e Extents[T]) RankDynamic() int { return e.vals.SizeDynamic() }

// Extent returns the size of dimension r. Panics if r is out of range.
func (e Extents[T]) Extent(r int) T {
	e.checkRank(r)
	return e.vals.Value(r)
}

// StaticExtent returns the pattern tag at rank r: the fixed size, or
// Dynamic when the dimension is sized at construction. Panics if r is out
// of range.
func (e Extents[T]) StaticExtent(r int) uint64 {
	e.checkRank(r)
	return e.vals.StaticValue(r)
}

// Pattern returns the frozen tag sequence this value was built against.
func (e Extents[T]) Pattern() *Pattern { return e.vals.Pattern() }

// Equal reports whether e and other describe the same shape. It is the
// single-index-type form of the package-level Equal.
func (e Extents[T]) Equal(other Extents[T]) bool { return Equal(e, other) }

// String formats the runtime sizes, e.g. "[64 28 28]".
func (e Extents[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < e.Rank(); r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", e.vals.Value(r))
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether two extents of possibly different index types
// describe the same shape: equal rank, and numerically equal sizes at
// every rank. Which dimensions were static does not matter. Rank mismatch
// short-circuits without reading any extent.
func Equal[A Index, B Index](a Extents[A], b Extents[B]) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	for r := 0; r < a.Rank(); r++ {
		if uint64(a.Extent(r)) != uint64(b.Extent(r)) {
			return false
		}
	}
	return true
}

func (e Extents[T]) checkRank(r int) {
	if r < 0 || r >= e.Rank() {
		panic(fmt.Sprintf("rank index %d out of range for rank %d", r, e.Rank()))
	}
}

func checkRepresentable[T Index, V Index](vals []V) {
	for i, v := range vals {
		if !dims.Fits[T](v) {
			var zero T
			panic(fmt.Sprintf("value %d at position %d is not representable as %T", v, i, zero))
		}
	}
}

// checkPatternFits asserts that every static tag of p is representable in
// T. C++ rules this combination out at the type level; here it is a
// reachable runtime state, so Extent would otherwise truncate silently.
func checkPatternFits[T Index](p *Pattern) {
	for r := 0; r < p.Rank(); r++ {
		tag := p.Static(r)
		if tag != Dynamic && tag > dims.MaxOf[T]() {
			var zero T
			panic(fmt.Sprintf("static extent %d at rank %d is not representable as %T", tag, r, zero))
		}
	}
}
