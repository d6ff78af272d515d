package fit

import (
	"errors"
	"math"
	"testing"
)

func TestNewParameter(t *testing.T) {
	p, err := NewParameter(ParamSpec{Name: "index", Val: 2.0, Min: -10, Max: 10})
	if err != nil {
		t.Fatalf("NewParameter() error: %v", err)
	}

	if p.Name() != "index" {
		t.Fatalf("Name() = %q, want %q", p.Name(), "index")
	}
	if p.Val() != 2.0 {
		t.Fatalf("Val() = %v, want 2", p.Val())
	}
	if p.Min() != -10 || p.Max() != 10 {
		t.Fatalf("bounds = [%v, %v], want [-10, 10]", p.Min(), p.Max())
	}
	if p.Frozen() {
		t.Fatal("new parameter unexpectedly frozen")
	}
}

func TestNewParameterInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec ParamSpec
	}{
		{name: "empty name", spec: ParamSpec{Val: 1, Min: 0, Max: 2}},
		{name: "min above max", spec: ParamSpec{Name: "x", Val: 1, Min: 2, Max: 0}},
		{name: "value below min", spec: ParamSpec{Name: "x", Val: -1, Min: 0, Max: 2}},
		{name: "value above max", spec: ParamSpec{Name: "x", Val: 3, Min: 0, Max: 2}},
		{name: "NaN value", spec: ParamSpec{Name: "x", Val: math.NaN(), Min: 0, Max: 2}},
		{name: "NaN bound", spec: ParamSpec{Name: "x", Val: 1, Min: math.NaN(), Max: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParameter(tt.spec); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("NewParameter() error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestParameterSetBounds(t *testing.T) {
	p := MustParameter(ParamSpec{Name: "ampl", Val: 1, Min: 0, Max: NoMax})

	if err := p.Set(1e30); err != nil {
		t.Fatalf("Set(1e30) error: %v", err)
	}
	if p.Val() != 1e30 {
		t.Fatalf("Val() = %v, want 1e30", p.Val())
	}

	if err := p.Set(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set(-1) error = %v, want ErrOutOfBounds", err)
	}
	if p.Val() != 1e30 {
		t.Fatalf("failed Set mutated value: %v", p.Val())
	}

	if err := p.Set(math.NaN()); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set(NaN) error = %v, want ErrOutOfBounds", err)
	}
}

func TestParameterFreezeIsAdvisory(t *testing.T) {
	p := MustParameter(ParamSpec{Name: "cutoff", Val: 10, Min: 0, Max: NoMax, Frozen: true})

	if !p.Frozen() {
		t.Fatal("expected frozen parameter")
	}

	// Frozen guards against optimizers, not against explicit assignment:
	// amplitude seeding happens outside the optimizer loop.
	if err := p.Set(20); err != nil {
		t.Fatalf("Set() on frozen parameter error: %v", err)
	}
	if p.Val() != 20 {
		t.Fatalf("Val() = %v, want 20", p.Val())
	}

	p.Thaw()
	if p.Frozen() {
		t.Fatal("Thaw() left parameter frozen")
	}
	p.Freeze()
	if !p.Frozen() {
		t.Fatal("Freeze() left parameter free")
	}
}

func TestValues(t *testing.T) {
	params := []*Parameter{
		MustParameter(ParamSpec{Name: "a", Val: 1.5, Min: NoMin, Max: NoMax}),
		MustParameter(ParamSpec{Name: "b", Val: -2, Min: NoMin, Max: NoMax}),
	}

	v := Values(params)
	if len(v) != 2 || v[0] != 1.5 || v[1] != -2 {
		t.Fatalf("Values() = %v, want [1.5 -2]", v)
	}
}

func TestParameterSpecRoundTrip(t *testing.T) {
	spec := ParamSpec{Name: "B", Val: 1, Min: 0, Max: 10, Frozen: true, Unit: "G"}
	p := MustParameter(spec)

	if got := p.Spec(); got != spec {
		t.Fatalf("Spec() = %+v, want %+v", got, spec)
	}
}
