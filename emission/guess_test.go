package emission

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-gamma/fit"
	"github.com/cwbudde/algo-gamma/grid"
	"github.com/cwbudde/algo-gamma/internal/onezonetest"
	"github.com/cwbudde/algo-gamma/internal/testutil"
)

func TestGuessRescalesAmplitude(t *testing.T) {
	lib := &onezonetest.Library{}
	m := newTestModel(t, ChannelInverseCompton, lib)

	lo, hi := testutil.LogEdges(1, 100, 6)

	before, err := m.Calc(fit.Values(m.Params()), lo, hi)
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}

	widths, err := grid.Widths(lo, hi)
	if err != nil {
		t.Fatalf("Widths: %v", err)
	}

	// An observation three times brighter than the current model.
	observed := make([]float64, len(before))
	for i := range observed {
		observed[i] = 3 * before[i] / widths[i]
	}

	if err := m.Guess(observed, lo, hi); err != nil {
		t.Fatalf("Guess: %v", err)
	}

	ampl := m.Param("ampl").Val()
	if math.Abs(ampl-3) > 1e-9 {
		t.Fatalf("amplitude after guess: got %v, want 3", ampl)
	}

	after, err := m.Calc(fit.Values(m.Params()), lo, hi)
	if err != nil {
		t.Fatalf("Calc after guess: %v", err)
	}

	// Every bin scales by the same factor, the guessed amplitude.
	ratios := make([]float64, len(after))
	want := make([]float64, len(after))
	for i := range after {
		ratios[i] = after[i] / before[i]
		want[i] = ampl
	}

	testutil.RequireSliceNearlyEqual(t, ratios, want, 1e-9*ampl)
}

func TestGuessLeavesShapeParametersAlone(t *testing.T) {
	lib := &onezonetest.Library{}
	m := newTestModel(t, ChannelPionDecay, lib)

	lo, hi := testutil.LogEdges(1, 100, 4)
	observed := []float64{1, 1, 1, 1}

	if err := m.Guess(observed, lo, hi); err != nil {
		t.Fatalf("Guess: %v", err)
	}

	if got := m.Param("index").Val(); got != 2.1 {
		t.Fatalf("index changed by guess: got %v, want 2.1", got)
	}

	if got := m.Param("ref").Val(); got != 60 {
		t.Fatalf("ref changed by guess: got %v, want 60", got)
	}
}

func TestGuessObservationSizeMismatch(t *testing.T) {
	m := newTestModel(t, ChannelInverseCompton, &onezonetest.Library{})

	lo, hi := testutil.LinearEdges(1, 1, 2)
	err := m.Guess([]float64{1, 2, 3}, lo, hi)
	if !errors.Is(err, ErrObservationSize) {
		t.Fatalf("error mismatch: got %v, want ErrObservationSize", err)
	}
}

func TestGuessTooFewBins(t *testing.T) {
	m := newTestModel(t, ChannelInverseCompton, &onezonetest.Library{})

	err := m.Guess([]float64{5}, []float64{1}, []float64{2})
	if !errors.Is(err, ErrTooFewBins) {
		t.Fatalf("error mismatch: got %v, want ErrTooFewBins", err)
	}
}

func TestGuessZeroModelFlux(t *testing.T) {
	lib := &onezonetest.Library{Curve: constantCurve(0)}
	m := newTestModel(t, ChannelInverseCompton, lib)

	lo, hi := testutil.LinearEdges(1, 1, 4)
	err := m.Guess([]float64{1, 1, 1, 1}, lo, hi)
	if !errors.Is(err, ErrZeroModelFlux) {
		t.Fatalf("error mismatch: got %v, want ErrZeroModelFlux", err)
	}
}

func TestGuessPropagatesCalcError(t *testing.T) {
	errBoom := errors.New("boom")
	lib := &onezonetest.Library{SpectrumErr: errBoom}
	m := newTestModel(t, ChannelInverseCompton, lib)

	lo, hi := testutil.LinearEdges(1, 1, 4)
	err := m.Guess([]float64{1, 1, 1, 1}, lo, hi)
	if !errors.Is(err, errBoom) {
		t.Fatalf("error mismatch: got %v, want wrapped boom", err)
	}
}

func TestGuessRejectsNegativeScale(t *testing.T) {
	lib := &onezonetest.Library{}
	m := newTestModel(t, ChannelInverseCompton, lib)

	lo, hi := testutil.LinearEdges(1, 1, 4)
	err := m.Guess([]float64{-1, -1, -1, -1}, lo, hi)
	if !errors.Is(err, fit.ErrOutOfBounds) {
		t.Fatalf("error mismatch: got %v, want fit.ErrOutOfBounds", err)
	}

	if got := m.Param("ampl").Val(); got != 1 {
		t.Fatalf("amplitude should be unchanged after rejected guess: got %v", got)
	}
}
