// Package grid builds photon-energy grids from histogram bin edges and
// integrates model curves over them.
//
// Spectral-fitting frameworks describe an observation as N contiguous energy
// bins, handed over as two equal-length edge arrays (low edges, high edges)
// with lo[i+1] == hi[i]. Emission evaluators instead want a single monotonic
// sequence of grid points. This package converts between the two views:
//
//   - [Merge] turns N bins into the N+1 boundary points.
//   - [MergeMidpoints] additionally inserts the N bin midpoints for evaluators
//     that need denser sampling.
//   - [TrapezoidBins] folds a curve sampled on the boundary points back into
//     one integral per bin.
//
// All functions validate the edge precondition up front and return a defined
// error instead of silently producing a non-physical grid.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid construction and integration.
var (
	ErrEmptyEdges     = errors.New("grid: empty bin edges")
	ErrLengthMismatch = errors.New("grid: edge arrays differ in length")
	ErrEmptyBin       = errors.New("grid: bin high edge not above low edge")
	ErrNotContiguous  = errors.New("grid: bins not contiguous")
	ErrTooFewPoints   = errors.New("grid: need at least two grid points")
)

// Validate checks that lo and hi describe contiguous ascending bins:
// equal non-zero lengths, lo[i] < hi[i] for every bin, and hi[i] == lo[i+1]
// exactly for consecutive bins.
//
// Exact equality is intentional. Fitting frameworks slice both edge arrays out
// of one boundary vector, so shared edges are bit-identical; anything else is
// a sign the caller mixed bins from different spectra.
func Validate(lo, hi []float64) error {
	if len(lo) == 0 || len(hi) == 0 {
		return ErrEmptyEdges
	}

	if len(lo) != len(hi) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(lo), len(hi))
	}

	for i := range lo {
		if !(hi[i] > lo[i]) {
			return fmt.Errorf("%w: bin %d [%g, %g]", ErrEmptyBin, i, lo[i], hi[i])
		}

		if i > 0 && lo[i] != hi[i-1] {
			return fmt.Errorf("%w: hi[%d]=%g, lo[%d]=%g", ErrNotContiguous, i-1, hi[i-1], i, lo[i])
		}
	}

	return nil
}

// Merge builds the boundary-point grid for N contiguous bins: the N low edges
// in order, followed by the final high edge. The result has N+1 strictly
// increasing points.
func Merge(lo, hi []float64) ([]float64, error) {
	if err := Validate(lo, hi); err != nil {
		return nil, err
	}

	n := len(lo)
	x := make([]float64, n+1)
	copy(x, lo)
	x[n] = hi[n-1]

	return x, nil
}

// MergeMidpoints builds the boundary-point grid and inserts the N bin
// midpoints (lo[i]+hi[i])/2, returning 2N+1 points sorted ascending.
func MergeMidpoints(lo, hi []float64) ([]float64, error) {
	x, err := Merge(lo, hi)
	if err != nil {
		return nil, err
	}

	n := len(lo)
	mid := make([]float64, n)
	tmp := make([]float64, n)
	vecmath.ScaleBlock(mid, lo, 0.5)
	vecmath.ScaleBlock(tmp, hi, 0.5)
	vecmath.AddBlockInPlace(mid, tmp)

	x = append(x, mid...)
	sort.Float64s(x)

	return x, nil
}

// Widths returns the per-bin widths hi[i]-lo[i].
func Widths(lo, hi []float64) ([]float64, error) {
	if err := Validate(lo, hi); err != nil {
		return nil, err
	}

	w := make([]float64, len(lo))
	for i := range w {
		w[i] = hi[i] - lo[i]
	}

	return w, nil
}

// TrapezoidBins integrates f over each adjacent interval of x by the
// trapezoidal rule: out[i] = (x[i+1]-x[i]) * (f[i]+f[i+1])/2. This is the
// bin-by-bin form, not a cumulative integral; summing the result gives the
// same value as integrating f over the whole grid.
//
// x and f must have equal length >= 2. x is assumed increasing (use [Merge]
// to construct it); widths from a decreasing grid come out negative rather
// than raising an error.
func TrapezoidBins(x, f []float64) ([]float64, error) {
	if len(x) != len(f) {
		return nil, fmt.Errorf("%w: %d grid points vs %d values", ErrLengthMismatch, len(x), len(f))
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x))
	}

	n := len(x) - 1

	// Endpoint averages via block kernels: avg = f[:n]/2 + f[1:]/2.
	avg := make([]float64, n)
	tmp := make([]float64, n)
	vecmath.ScaleBlock(avg, f[:n], 0.5)
	vecmath.ScaleBlock(tmp, f[1:], 0.5)
	vecmath.AddBlockInPlace(avg, tmp)

	for i := 0; i < n; i++ {
		tmp[i] = x[i+1] - x[i]
	}

	vecmath.MulBlockInPlace(avg, tmp)

	return avg, nil
}
