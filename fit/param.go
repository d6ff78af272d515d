package fit

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by parameter construction and mutation.
var (
	ErrInvalidSpec = errors.New("fit: invalid parameter spec")
	ErrOutOfBounds = errors.New("fit: parameter value out of bounds")
	ErrNoGuesser   = errors.New("fit: model does not support amplitude guessing")
)

// NoMin and NoMax mark a parameter side that carries no constraint.
const (
	NoMin = -math.MaxFloat64
	NoMax = math.MaxFloat64
)

// ParamSpec describes a parameter schema entry: starting value, bounds,
// frozen state, and an optional unit for display.
type ParamSpec struct {
	Name   string
	Val    float64
	Min    float64
	Max    float64
	Frozen bool
	Unit   string
}

// Parameter is a named scalar owned by the fitting layer. Bounds are enforced
// on every mutation; the frozen flag tells optimizers to keep the value fixed
// but does not block programmatic Set calls (normalization seeding adjusts a
// parameter outside the optimizer loop).
type Parameter struct {
	name   string
	unit   string
	val    float64
	min    float64
	max    float64
	frozen bool
}

// NewParameter validates a spec and returns the live parameter.
func NewParameter(s ParamSpec) (*Parameter, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}

	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min > s.Max {
		return nil, fmt.Errorf("%w: %s bounds [%g, %g]", ErrInvalidSpec, s.Name, s.Min, s.Max)
	}

	p := &Parameter{
		name:   s.Name,
		unit:   s.Unit,
		min:    s.Min,
		max:    s.Max,
		frozen: s.Frozen,
	}

	if err := p.Set(s.Val); err != nil {
		return nil, fmt.Errorf("%w: %s starting value %g outside [%g, %g]",
			ErrInvalidSpec, s.Name, s.Val, s.Min, s.Max)
	}

	return p, nil
}

// MustParameter is NewParameter for schema tables known valid at compile
// time. It panics on an invalid spec.
func MustParameter(s ParamSpec) *Parameter {
	p, err := NewParameter(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Unit returns the display unit, or "" for dimensionless parameters.
func (p *Parameter) Unit() string { return p.unit }

// Val returns the current value.
func (p *Parameter) Val() float64 { return p.val }

// Min returns the lower bound ([NoMin] if unconstrained).
func (p *Parameter) Min() float64 { return p.min }

// Max returns the upper bound ([NoMax] if unconstrained).
func (p *Parameter) Max() float64 { return p.max }

// Frozen reports whether optimizers should hold the value fixed.
func (p *Parameter) Frozen() bool { return p.frozen }

// Freeze marks the parameter fixed for optimizers.
func (p *Parameter) Freeze() { p.frozen = true }

// Thaw marks the parameter free for optimizers.
func (p *Parameter) Thaw() { p.frozen = false }

// Set assigns a new value, enforcing bounds. NaN is rejected.
func (p *Parameter) Set(v float64) error {
	if !(v >= p.min && v <= p.max) {
		return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrOutOfBounds, p.name, v, p.min, p.max)
	}

	p.val = v

	return nil
}

// Spec returns the parameter's current state as a schema entry.
func (p *Parameter) Spec() ParamSpec {
	return ParamSpec{
		Name:   p.name,
		Val:    p.val,
		Min:    p.min,
		Max:    p.max,
		Frozen: p.frozen,
		Unit:   p.unit,
	}
}
