// Package dims implements the hybrid static/dynamic dimension sequence
// underneath the public extents package: a frozen per-rank tag table, a
// prefix-count map from rank index to dynamic-storage slot, and a sequence
// value that stores only the dynamic dimension sizes.
package dims

import (
	"fmt"
	"strings"
)

// Dynamic is the sentinel tag marking a dimension whose size is not known
// until construction time.
const Dynamic = ^uint64(0)

// Pattern is a frozen per-dimension tag sequence. Each tag is either a
// concrete dimension size or Dynamic. A Pattern never changes after
// NewPattern returns and may be shared across any number of sequences and
// goroutines.
type Pattern struct {
	tags      []uint64
	dynBefore []int // dynBefore[r] = number of Dynamic tags at index < r
	rankDyn   int
}

// NewPattern freezes the given tag sequence into a Pattern.
func NewPattern(tags ...uint64) *Pattern {
	p := &Pattern{
		tags:      make([]uint64, len(tags)),
		dynBefore: make([]int, len(tags)+1),
	}
	copy(p.tags, tags)
	for r, tag := range p.tags {
		p.dynBefore[r] = p.rankDyn
		if tag == Dynamic {
			p.rankDyn++
		}
	}
	p.dynBefore[len(tags)] = p.rankDyn
	return p
}

// AllDynamic returns a Pattern of the given rank with every dimension
// Dynamic.
func AllDynamic(rank int) *Pattern {
	tags := make([]uint64, rank)
	for i := range tags {
		tags[i] = Dynamic
	}
	return NewPattern(tags...)
}

// Rank returns the number of dimensions.
func (p *Pattern) Rank() int {
	if p == nil {
		return 0
	}
	return len(p.tags)
}

// RankDynamic returns the number of Dynamic tags.
func (p *Pattern) RankDynamic() int {
	if p == nil {
		return 0
	}
	return p.rankDyn
}

// Static returns the tag at rank r verbatim (Dynamic if the dimension is
// dynamic). Callers must guarantee 0 <= r < Rank().
func (p *Pattern) Static(r int) uint64 { return p.tags[r] }

// IsDynamic reports whether the dimension at rank r is dynamic.
func (p *Pattern) IsDynamic(r int) bool { return p.tags[r] == Dynamic }

// DynamicBefore returns the number of dynamic dimensions at ranks below r,
// which is also the storage slot of rank r when rank r is dynamic.
// Callers must guarantee 0 <= r <= Rank().
func (p *Pattern) DynamicBefore(r int) int { return p.dynBefore[r] }

// CompatibleWith reports whether a sequence built against o can describe
// the same shapes as one built against p: equal rank, and at every rank at
// least one side is Dynamic or both tags are equal.
func (p *Pattern) CompatibleWith(o *Pattern) bool {
	if p.Rank() != o.Rank() {
		return false
	}
	for r := 0; r < p.Rank(); r++ {
		if p.tags[r] != Dynamic && o.tags[r] != Dynamic && p.tags[r] != o.tags[r] {
			return false
		}
	}
	return true
}

// NarrowsFrom reports whether any rank is static in p but Dynamic in o,
// i.e. converting a sequence from o to p would fix a dimension that was
// only known at runtime.
func (p *Pattern) NarrowsFrom(o *Pattern) bool {
	for r := 0; r < p.Rank(); r++ {
		if p.tags[r] != Dynamic && r < o.Rank() && o.tags[r] == Dynamic {
			return true
		}
	}
	return false
}

// Equal reports whether two patterns carry identical tag sequences.
func (p *Pattern) Equal(o *Pattern) bool {
	if p.Rank() != o.Rank() {
		return false
	}
	for r := 0; r < p.Rank(); r++ {
		if p.tags[r] != o.tags[r] {
			return false
		}
	}
	return true
}

// String formats the tag sequence, printing "?" for dynamic dimensions,
// e.g. "[? 5]".
func (p *Pattern) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for r := 0; r < p.Rank(); r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		if p.tags[r] == Dynamic {
			b.WriteByte('?')
		} else {
			fmt.Fprintf(&b, "%d", p.tags[r])
		}
	}
	b.WriteByte(']')
	return b.String()
}
