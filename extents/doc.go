// Copyright 2025 The Axis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package extents describes the shape of a multidimensional array: a
// fixed-rank tuple of dimension sizes where each dimension is either fixed
// in a shape pattern or supplied at construction time.
//
// # Overview
//
// A Pattern freezes the per-dimension tags once: a concrete size, or
// Dynamic for "sized at construction". An Extents value pairs a pattern
// with the dynamic sizes; static dimensions cost no storage. Layout
// mappings and view types consume only Rank, RankDynamic, Extent,
// StaticExtent and equality and stay agnostic of which dimensions were
// static.
//
// # Basic Usage
//
//	// A batch of 28x28 images: batch size chosen at runtime.
//	batch := extents.NewPattern(extents.Dynamic, 28, 28)
//
//	e := extents.Of[int32](batch, 64)      // dynamic sizes only
//	e.Extent(0)                            // 64
//	e.Extent(1)                            // 28
//	e.StaticExtent(0)                      // extents.Dynamic
//
//	// The full form restates every dimension and is validated against
//	// the pattern.
//	f := extents.Of[int32](batch, 64, 28, 28)
//	extents.Equal(e, f)                    // true
//
// # Conversion
//
// Extents built against compatible patterns convert into each other.
// Convert permits only conversions that cannot lose information; fixing a
// previously dynamic dimension or narrowing the index type must be spelled
// ConvertExplicit:
//
//	src := extents.Of[int64](extents.AllDynamic(2), 5, 7)
//	dst := extents.ConvertExplicit[int32](extents.NewPattern(extents.Dynamic, 7), src)
//
// # Contract violations
//
// Every operation in this package is total for well-formed arguments and
// panics on contract violations: a negative or unrepresentable size, a
// pattern whose static tag the index type cannot represent, a full-form
// value that contradicts a static tag, a rank index out of range, or an
// incompatible conversion. There is no error-returning path;
// validate inputs before constructing when they come from outside.
package extents
