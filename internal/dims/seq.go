package dims

import "fmt"

// Seq is a rank-R dimension sequence where each rank is either fixed by a
// pattern tag or supplied at construction. Only the dynamic values are
// stored; an all-static sequence carries no storage at all. Seq is an
// immutable value: copies share the pattern and the never-mutated dynamic
// slice.
type Seq[T Index] struct {
	pat *Pattern
	dyn []T // length == pat.RankDynamic(); nil when zero
}

// NewSeq returns the default sequence for p: every dynamic dimension is 0.
func NewSeq[T Index](p *Pattern) Seq[T] {
	return Seq[T]{pat: p, dyn: dynStorage[T](p)}
}

// SeqOf builds a sequence from positional values. The count must equal
// either the pattern's dynamic rank (dynamic-only form, stored verbatim in
// ascending rank order) or its full rank (full form, where values at
// static ranks are validated against the tags).
func SeqOf[T Index, V Index](p *Pattern, vals ...V) Seq[T] {
	return SeqFromSlice[T](p, vals)
}

// SeqFromSlice is SeqOf over a pre-built slice.
func SeqFromSlice[T Index, V Index](p *Pattern, vals []V) Seq[T] {
	s := Seq[T]{pat: p, dyn: dynStorage[T](p)}
	switch len(vals) {
	case p.RankDynamic():
		for i, v := range vals {
			s.dyn[i] = T(v)
		}
	case p.Rank():
		for r, v := range vals {
			if p.IsDynamic(r) {
				s.dyn[p.DynamicBefore(r)] = T(v)
			} else if uint64(v) != p.Static(r) {
				panic(fmt.Sprintf("value %d does not match static extent %d at rank %d", v, p.Static(r), r))
			}
		}
	default:
		panic(fmt.Sprintf("got %d values, want %d (rank) or %d (dynamic rank)", len(vals), p.Rank(), p.RankDynamic()))
	}
	return s
}

// Value returns the size of dimension r: the pattern tag when static, the
// stored value otherwise. Callers must guarantee 0 <= r < Size().
func (s Seq[T]) Value(r int) T {
	if s.pat.IsDynamic(r) {
		return s.dyn[s.pat.DynamicBefore(r)]
	}
	return T(s.pat.Static(r))
}

// StaticValue returns the tag at rank r verbatim (Dynamic if dynamic).
func (s Seq[T]) StaticValue(r int) uint64 { return s.pat.Static(r) }

// Size returns the rank of the sequence.
func (s Seq[T]) Size() int { return s.pat.Rank() }

// SizeDynamic returns the number of stored dynamic values.
func (s Seq[T]) SizeDynamic() int { return s.pat.RankDynamic() }

// Pattern returns the frozen tag sequence the value was built against.
func (s Seq[T]) Pattern() *Pattern { return s.pat }

func dynStorage[T Index](p *Pattern) []T {
	if p.RankDynamic() == 0 {
		return nil
	}
	return make([]T, p.RankDynamic())
}
