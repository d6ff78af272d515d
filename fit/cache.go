package fit

import (
	"encoding/binary"
	"math"
)

// defaultCacheSize bounds the memo table when the caller does not choose a
// depth. Optimizers typically bounce between a handful of recent points, so a
// short queue already absorbs most repeat evaluations.
const defaultCacheSize = 10

// Cached memoizes [Model.Calc] results keyed on the parameter vector and both
// edge arrays. Entries are evicted oldest-first once the depth is exceeded.
//
// Stored results are copied on the way in and on the way out, so callers may
// mutate returned slices freely. Errors are never cached. Like everything in
// this package, Cached is not safe for concurrent use.
type Cached struct {
	model   Model
	size    int
	entries map[string][]float64
	order   []string
}

// NewCached wraps model with a memo table of the given depth. A depth <= 0
// selects the default. NewCached panics on a nil model.
func NewCached(model Model, size int) *Cached {
	if model == nil {
		panic("fit: NewCached called with nil model")
	}

	if size <= 0 {
		size = defaultCacheSize
	}

	return &Cached{
		model:   model,
		size:    size,
		entries: make(map[string][]float64, size),
	}
}

// Name returns the wrapped model's name.
func (c *Cached) Name() string { return c.model.Name() }

// Params returns the wrapped model's live parameters.
func (c *Cached) Params() []*Parameter { return c.model.Params() }

// Calc returns the memoized result for (p, lo, hi) or evaluates the wrapped
// model on a miss. A hit skips the model entirely, including its diagnostics.
func (c *Cached) Calc(p, lo, hi []float64) ([]float64, error) {
	key := calcKey(p, lo, hi)

	if hit, ok := c.entries[key]; ok {
		return append([]float64(nil), hit...), nil
	}

	out, err := c.model.Calc(p, lo, hi)
	if err != nil {
		return nil, err
	}

	c.store(key, out)

	return out, nil
}

// Guess forwards to the wrapped model when it supports normalization
// seeding. The subsequent parameter change lands in a fresh cache key, so no
// invalidation is needed.
func (c *Cached) Guess(observed, lo, hi []float64) error {
	g, ok := c.model.(Guesser)
	if !ok {
		return ErrNoGuesser
	}

	return g.Guess(observed, lo, hi)
}

func (c *Cached) store(key string, out []float64) {
	if len(c.order) >= c.size {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}

	c.entries[key] = append([]float64(nil), out...)
	c.order = append(c.order, key)
}

// calcKey serializes the full Calc input into a map key. Lengths separate the
// three slices so (p=[1], lo=[2]) and (p=[1,2], lo=[]) cannot collide.
func calcKey(p, lo, hi []float64) string {
	buf := make([]byte, 0, 8*(len(p)+len(lo)+len(hi)+3))
	for _, s := range [][]float64{p, lo, hi} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s)))
		for _, v := range s {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}

	return string(buf)
}
