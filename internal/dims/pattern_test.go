package dims

import "testing"

func TestPatternRanks(t *testing.T) {
	tests := []struct {
		tags    []uint64
		rank    int
		rankDyn int
	}{
		{nil, 0, 0},
		{[]uint64{5}, 1, 0},
		{[]uint64{Dynamic}, 1, 1},
		{[]uint64{Dynamic, 5}, 2, 1},
		{[]uint64{5, Dynamic, 8, Dynamic, Dynamic}, 5, 3},
		{[]uint64{0}, 1, 0}, // zero-size static dimension is a valid tag
	}

	for _, tt := range tests {
		p := NewPattern(tt.tags...)
		if got := p.Rank(); got != tt.rank {
			t.Errorf("Pattern%v.Rank() = %d, want %d", p, got, tt.rank)
		}
		if got := p.RankDynamic(); got != tt.rankDyn {
			t.Errorf("Pattern%v.RankDynamic() = %d, want %d", p, got, tt.rankDyn)
		}
	}
}

func TestPatternStatic(t *testing.T) {
	p := NewPattern(5, Dynamic, 8)

	if got := p.Static(0); got != 5 {
		t.Errorf("Static(0) = %d, want 5", got)
	}
	if got := p.Static(1); got != Dynamic {
		t.Errorf("Static(1) = %d, want Dynamic", got)
	}
	if got := p.Static(2); got != 8 {
		t.Errorf("Static(2) = %d, want 8", got)
	}
	if p.IsDynamic(0) || !p.IsDynamic(1) || p.IsDynamic(2) {
		t.Errorf("IsDynamic: got (%v, %v, %v), want (false, true, false)",
			p.IsDynamic(0), p.IsDynamic(1), p.IsDynamic(2))
	}
}

func TestPatternDynamicBefore(t *testing.T) {
	tests := []struct {
		tags []uint64
		want []int // dynBefore for r = 0..rank
	}{
		{nil, []int{0}},
		{[]uint64{5, 7}, []int{0, 0, 0}},
		{[]uint64{Dynamic, Dynamic}, []int{0, 1, 2}},
		{[]uint64{5, Dynamic, 8, Dynamic, Dynamic}, []int{0, 0, 1, 1, 2, 3}},
	}

	for _, tt := range tests {
		p := NewPattern(tt.tags...)
		for r, want := range tt.want {
			if got := p.DynamicBefore(r); got != want {
				t.Errorf("Pattern%v.DynamicBefore(%d) = %d, want %d", p, r, got, want)
			}
		}
	}
}

func TestPatternFrozen(t *testing.T) {
	tags := []uint64{Dynamic, 5}
	p := NewPattern(tags...)

	tags[1] = 9 // the pattern copied its input
	if got := p.Static(1); got != 5 {
		t.Errorf("Static(1) = %d after mutating the input slice, want 5", got)
	}
}

func TestAllDynamic(t *testing.T) {
	p := AllDynamic(3)
	if p.Rank() != 3 || p.RankDynamic() != 3 {
		t.Fatalf("AllDynamic(3): rank %d, dynamic %d, want 3, 3", p.Rank(), p.RankDynamic())
	}
	for r := 0; r < 3; r++ {
		if !p.IsDynamic(r) {
			t.Errorf("AllDynamic(3).IsDynamic(%d) = false, want true", r)
		}
	}
}

func TestPatternCompatibleWith(t *testing.T) {
	tests := []struct {
		name string
		dst  *Pattern
		src  *Pattern
		want bool
	}{
		{"identical statics", NewPattern(5, 7), NewPattern(5, 7), true},
		{"all dynamic both", AllDynamic(2), AllDynamic(2), true},
		{"static vs dynamic", NewPattern(5, Dynamic), AllDynamic(2), true},
		{"dynamic vs static", AllDynamic(2), NewPattern(5, 7), true},
		{"static mismatch", NewPattern(5, 7), NewPattern(5, 8), false},
		{"rank mismatch", AllDynamic(2), AllDynamic(3), false},
		{"zero rank", NewPattern(), NewPattern(), true},
	}

	for _, tt := range tests {
		if got := tt.dst.CompatibleWith(tt.src); got != tt.want {
			t.Errorf("%s: %v.CompatibleWith(%v) = %v, want %v", tt.name, tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestPatternNarrowsFrom(t *testing.T) {
	tests := []struct {
		name string
		dst  *Pattern
		src  *Pattern
		want bool
	}{
		{"dynamic stays dynamic", AllDynamic(2), AllDynamic(2), false},
		{"static stays static", NewPattern(5, 7), NewPattern(5, 7), false},
		{"static gains dynamic", AllDynamic(2), NewPattern(5, 7), false},
		{"dynamic becomes static", NewPattern(Dynamic, 7), AllDynamic(2), true},
		{"one of many", NewPattern(5, Dynamic, 8), NewPattern(5, Dynamic, Dynamic), true},
	}

	for _, tt := range tests {
		if got := tt.dst.NarrowsFrom(tt.src); got != tt.want {
			t.Errorf("%s: %v.NarrowsFrom(%v) = %v, want %v", tt.name, tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestPatternEqual(t *testing.T) {
	a := NewPattern(5, Dynamic)
	b := NewPattern(5, Dynamic)
	c := NewPattern(Dynamic, 5)

	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v.Equal(%v) = true, want false", a, c)
	}
	if a.Equal(NewPattern(5)) {
		t.Error("patterns of different rank compared equal")
	}
}

func TestPatternString(t *testing.T) {
	tests := []struct {
		p    *Pattern
		want string
	}{
		{NewPattern(), "[]"},
		{NewPattern(5, Dynamic, 8), "[5 ? 8]"},
		{AllDynamic(2), "[? ?]"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
