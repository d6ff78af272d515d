package testutil

import "math"

// LinearEdges generates n contiguous bins of equal width starting at lo0.
// Consecutive bins share an edge exactly, matching what fitting frameworks
// hand to models.
func LinearEdges(lo0, width float64, n int) (lo, hi []float64) {
	lo = make([]float64, n)
	hi = make([]float64, n)
	for i := range lo {
		lo[i] = lo0 + float64(i)*width
		hi[i] = lo0 + float64(i+1)*width
	}

	return lo, hi
}

// LogEdges generates n contiguous log-spaced bins between emin and emax, the
// usual binning of X- and gamma-ray spectra. Shared edges are bit-identical
// because both arrays slice the same boundary sequence.
func LogEdges(emin, emax float64, n int) (lo, hi []float64) {
	bounds := make([]float64, n+1)
	step := (math.Log10(emax) - math.Log10(emin)) / float64(n)
	for i := range bounds {
		bounds[i] = math.Pow(10, math.Log10(emin)+float64(i)*step)
	}

	return bounds[:n], bounds[1:]
}

// PowerLawCurve samples amp*(x/x0)^(-index) on x: a positive, finite fixture
// curve with the falling shape of real emission spectra.
func PowerLawCurve(x []float64, amp, x0, index float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amp * math.Pow(v/x0, -index)
	}

	return out
}
