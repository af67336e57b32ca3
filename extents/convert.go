// Copyright 2025 The Axis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package extents

import (
	"fmt"

	"github.com/axis-ml/axis/internal/dims"
)

// Convert builds extents over dst from the runtime sizes of src.
//
// The patterns must be compatible: equal rank, and at every rank at least
// one tag Dynamic or both tags equal. Convert additionally refuses the two
// conversions that weaken a guarantee, panicking with a pointer at
// ConvertExplicit: fixing a dimension that was dynamic in src's pattern,
// and moving to an index type with a smaller maximum than From's.
func Convert[To Index, From Index](dst *Pattern, src Extents[From]) Extents[To] {
	checkCompatible(dst, src.Pattern())
	if dst.NarrowsFrom(src.Pattern()) {
		panic(fmt.Sprintf("converting %v to %v fixes a dynamic dimension; use ConvertExplicit", src.Pattern(), dst))
	}
	if dims.MaxOf[To]() < dims.MaxOf[From]() {
		var to To
		var from From
		panic(fmt.Sprintf("conversion narrows index type %T to %T; use ConvertExplicit", from, to))
	}
	return convert[To](dst, src)
}

// ConvertExplicit is Convert without the implicit-safety restrictions: it
// permits fixing a dimension that was dynamic in src (the runtime size
// must match the destination tag) and narrowing the index type (every
// size must be representable in To). Violations panic.
func ConvertExplicit[To Index, From Index](dst *Pattern, src Extents[From]) Extents[To] {
	checkCompatible(dst, src.Pattern())
	return convert[To](dst, src)
}

func convert[To Index, From Index](dst *Pattern, src Extents[From]) Extents[To] {
	checkPatternFits[To](dst)
	dyn := make([]To, 0, dst.RankDynamic())
	for r := 0; r < dst.Rank(); r++ {
		v := src.Extent(r)
		if !dst.IsDynamic(r) {
			if uint64(v) != dst.Static(r) {
				panic(fmt.Sprintf("value %d does not match static extent %d at rank %d", v, dst.Static(r), r))
			}
			continue
		}
		if !dims.Fits[To](v) {
			var zero To
			panic(fmt.Sprintf("value %d at rank %d is not representable as %T", v, r, zero))
		}
		dyn = append(dyn, To(v))
	}
	return Extents[To]{vals: dims.SeqFromSlice[To](dst, dyn)}
}

func checkCompatible(dst, src *Pattern) {
	if !dst.CompatibleWith(src) {
		panic(fmt.Sprintf("pattern %v is not convertible to %v", src, dst))
	}
}
