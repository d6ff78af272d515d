package testutil

import (
	"math"
	"testing"
)

func TestLinearEdges(t *testing.T) {
	lo, hi := LinearEdges(1, 0.5, 4)

	if len(lo) != 4 || len(hi) != 4 {
		t.Fatalf("lengths = %d, %d, want 4, 4", len(lo), len(hi))
	}
	if lo[0] != 1 || hi[3] != 3 {
		t.Fatalf("range = [%v, %v], want [1, 3]", lo[0], hi[3])
	}
	for i := 1; i < len(lo); i++ {
		if lo[i] != hi[i-1] {
			t.Fatalf("bins not contiguous at %d: lo=%v hi=%v", i, lo[i], hi[i-1])
		}
	}
}

func TestLogEdgesContiguousAndAscending(t *testing.T) {
	lo, hi := LogEdges(1, 100, 10)

	if len(lo) != 10 || len(hi) != 10 {
		t.Fatalf("lengths = %d, %d, want 10, 10", len(lo), len(hi))
	}
	for i := range lo {
		if !(hi[i] > lo[i]) {
			t.Fatalf("bin %d not ascending: [%v, %v]", i, lo[i], hi[i])
		}
		if i > 0 && lo[i] != hi[i-1] {
			t.Fatalf("shared edge not bit-identical at %d", i)
		}
	}
	if math.Abs(lo[0]-1) > 1e-12 || math.Abs(hi[9]-100) > 1e-10 {
		t.Fatalf("range = [%v, %v], want [1, 100]", lo[0], hi[9])
	}
}

func TestPowerLawCurvePositiveFinite(t *testing.T) {
	x := []float64{1, 10, 100, 1000}
	f := PowerLawCurve(x, 2, 10, 2.1)

	RequireFinite(t, f)
	for i, v := range f {
		if v <= 0 {
			t.Fatalf("index %d: non-positive value %v", i, v)
		}
	}
	if f[1] != 2 {
		t.Fatalf("curve at reference energy = %v, want amplitude 2", f[1])
	}
}
