// Package fit defines the minimal surface a spectral-fitting driver needs
// from a model: named bounded parameters, an evaluation contract over
// histogram bin edges, and a memoizing decorator for optimizers that revisit
// parameter vectors.
//
// The package deliberately contains no optimizer and no statistics. It exists
// so emission models (and anything else evaluated per energy bin) plug into
// external fit drivers through one small, stable interface.
//
// Nothing in this package is safe for concurrent use; fitting here is a
// single-threaded, synchronous affair.
package fit

// Model is a fittable model evaluated over contiguous energy bins.
//
// Calc receives the current parameter vector p in the exact order of
// Params(), plus the per-bin low and high edges, and returns one value per
// bin. Implementations must be deterministic in (p, lo, hi): [Cached] relies
// on repeated calls returning identical results.
type Model interface {
	// Name identifies the model instance in diagnostics.
	Name() string

	// Params returns the live parameter set in schema order. Callers may
	// mutate parameter values through [Parameter.Set]; the slice itself is
	// owned by the model.
	Params() []*Parameter

	// Calc evaluates the model for parameter vector p over the given bins.
	Calc(p, lo, hi []float64) ([]float64, error)
}

// Guesser is implemented by models that can seed their own normalization from
// an observed per-bin flux before fitting starts.
type Guesser interface {
	// Guess rescales the model's amplitude so its integrated flux matches the
	// observation. It mutates the amplitude parameter in place.
	Guess(observed, lo, hi []float64) error
}

// Values returns the current parameter values in order, ready to pass to
// [Model.Calc].
func Values(params []*Parameter) []float64 {
	out := make([]float64, len(params))
	for i, p := range params {
		out[i] = p.Val()
	}

	return out
}
