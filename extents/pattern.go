// Copyright 2025 The Axis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package extents

import (
	"github.com/axis-ml/axis/internal/dims"
)

// Dynamic is the sentinel tag marking a dimension whose size is chosen at
// construction time rather than fixed in the pattern.
const Dynamic = dims.Dynamic

// Index is the constraint for extent index types: any signed or unsigned
// integer type.
type Index = dims.Index

// Pattern is a frozen per-dimension tag sequence: each tag is either a
// concrete size or Dynamic. Patterns are immutable and freely shared;
// every Extents value is built against exactly one Pattern.
type Pattern = dims.Pattern

// NewPattern freezes the given tag sequence into a Pattern.
//
// Example:
//
//	m := extents.NewPattern(extents.Dynamic, 5) // rank 2, one dynamic dim
func NewPattern(tags ...uint64) *Pattern { return dims.NewPattern(tags...) }

// AllDynamic returns a Pattern of the given rank with every dimension
// Dynamic.
func AllDynamic(rank int) *Pattern { return dims.AllDynamic(rank) }
