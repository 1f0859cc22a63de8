package env

import (
	"math"
	"testing"
)

func TestBoxContains(t *testing.T) {
	b := NewBox(0, 50, []int{2}, DtypeFloat64)
	tests := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{50, true},
		{25, true},
		{-0.1, false},
		{50.1, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestUnbounded(t *testing.T) {
	b := Unbounded([]int{128, 128, 8}, DtypeInt32)
	if !math.IsInf(b.Low, -1) || !math.IsInf(b.High, 1) {
		t.Errorf("bounds = [%g, %g], want infinite", b.Low, b.High)
	}
	if !b.Contains(1e300) || !b.Contains(-1e300) {
		t.Error("unbounded box rejected a finite value")
	}
}

func TestDiscreteContains(t *testing.T) {
	d := Discrete{N: 3}
	for i := 0; i < 3; i++ {
		if !d.Contains(i) {
			t.Errorf("Contains(%d) = false, want true", i)
		}
	}
	if d.Contains(-1) || d.Contains(3) {
		t.Error("Discrete accepted an out-of-range choice")
	}
}

func TestSpaceStrings(t *testing.T) {
	tests := []struct {
		space Space
		want  string
	}{
		{NewBox(0, 255, []int{4, 256, 256, 3}, DtypeUint8), "Box([4 256 256 3], uint8, [0, 255])"},
		{Discrete{N: 3}, "Discrete(3)"},
		{TupleSpace{Spaces: []Space{NewBox(0, 50, []int{2}, DtypeFloat64), Discrete{N: 3}}},
			"Tuple(Box([2], float64, [0, 50]), Discrete(3))"},
	}
	for _, tt := range tests {
		if got := tt.space.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDictSpaceString(t *testing.T) {
	d := DictSpace{Entries: []DictEntry{
		{Key: "agent", Space: Unbounded([]int{VarShape, 5}, DtypeFloat64)},
	}}
	want := "Dict(agent: Box([-1 5], float64, [-Inf, +Inf]))"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
