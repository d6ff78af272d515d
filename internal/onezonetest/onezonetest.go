// Package onezonetest provides an in-memory onezone.Library for tests.
//
// The fake records every configuration it receives, logs which spectrum was
// requested, and keeps an acquire/release balance. Close deliberately zeroes
// the buffer returned by the last spectrum call: an adapter that extracts a
// curve without copying it before release fails loudly instead of silently
// integrating a dead buffer.
package onezonetest

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-gamma/onezone"
)

// Spectrum-call names recorded in Library.Calls.
const (
	CallInverseCompton = "inverse-compton"
	CallSynchrotron    = "synchrotron"
	CallPionDecay      = "pion-decay"
)

// Per-channel curve factors so tests can tell which spectrum produced a
// result.
const (
	icFactor = 1.0
	syFactor = 0.5
	ppFactor = 0.25
)

// Library implements onezone.Library with deterministic analytic curves.
// The zero value is ready to use. Not safe for concurrent use.
type Library struct {
	// Curve overrides the default power-law curve when non-nil. It must
	// return a fresh slice on every call; the fake zeroes returned buffers
	// on Close.
	Curve func(energies []float64) []float64

	// Injected failures.
	ElectronErr error // fail Electron construction
	ProtonErr   error // fail Proton construction
	SpectrumErr error // fail spectrum computation
	CloseErr    error // fail Close

	// Recorded state.
	LastElectron *onezone.ElectronConfig
	LastProton   *onezone.ProtonConfig
	Calls        []string
	Acquired     int
	Released     int
}

// Open returns the number of evaluators acquired but not yet released.
func (l *Library) Open() int { return l.Acquired - l.Released }

// Electron implements onezone.Library.
func (l *Library) Electron(cfg onezone.ElectronConfig) (onezone.ElectronEvaluator, error) {
	if l.ElectronErr != nil {
		return nil, l.ElectronErr
	}

	rec := cfg
	l.LastElectron = &rec
	l.Acquired++

	return &electronEvaluator{lib: l, cfg: cfg}, nil
}

// Proton implements onezone.Library.
func (l *Library) Proton(cfg onezone.ProtonConfig) (onezone.ProtonEvaluator, error) {
	if l.ProtonErr != nil {
		return nil, l.ProtonErr
	}

	rec := cfg
	l.LastProton = &rec
	l.Acquired++

	return &protonEvaluator{lib: l, cfg: cfg}, nil
}

func (l *Library) spectrum(call string, energies []float64, amp, norm, index, factor float64) ([]float64, error) {
	l.Calls = append(l.Calls, call)

	if l.SpectrumErr != nil {
		return nil, l.SpectrumErr
	}

	if l.Curve != nil {
		return l.Curve(energies), nil
	}

	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = factor * amp * math.Pow(e/norm, -index)
	}

	return out, nil
}

type electronEvaluator struct {
	lib    *Library
	cfg    onezone.ElectronConfig
	buf    []float64
	closed bool
}

func (e *electronEvaluator) InverseCompton() ([]float64, error) {
	return e.compute(CallInverseCompton, icFactor)
}

func (e *electronEvaluator) Synchrotron() ([]float64, error) {
	return e.compute(CallSynchrotron, syFactor)
}

func (e *electronEvaluator) compute(call string, factor float64) ([]float64, error) {
	if e.closed {
		return nil, errors.New("onezonetest: electron evaluator used after Close")
	}

	out, err := e.lib.spectrum(call, e.cfg.Energies, e.cfg.Amplitude, e.cfg.NormEnergy, e.cfg.Index, factor)
	if err != nil {
		return nil, err
	}

	e.buf = out

	return out, nil
}

func (e *electronEvaluator) Close() error {
	if e.closed {
		return errors.New("onezonetest: electron evaluator closed twice")
	}

	e.closed = true
	zero(e.buf)
	e.lib.Released++

	return e.lib.CloseErr
}

type protonEvaluator struct {
	lib    *Library
	cfg    onezone.ProtonConfig
	buf    []float64
	closed bool
}

func (p *protonEvaluator) PionDecay() ([]float64, error) {
	if p.closed {
		return nil, errors.New("onezonetest: proton evaluator used after Close")
	}

	out, err := p.lib.spectrum(CallPionDecay, p.cfg.Energies, p.cfg.Amplitude, p.cfg.NormEnergy, p.cfg.Index, ppFactor)
	if err != nil {
		return nil, err
	}

	p.buf = out

	return out, nil
}

func (p *protonEvaluator) Close() error {
	if p.closed {
		return errors.New("onezonetest: proton evaluator closed twice")
	}

	p.closed = true
	zero(p.buf)
	p.lib.Released++

	return p.lib.CloseErr
}

func zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
