package emission

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-gamma/fit"
	"github.com/cwbudde/algo-gamma/grid"
	"github.com/cwbudde/algo-gamma/onezone"
)

// Unit conversions between the fit driver's conventions and the evaluator
// contract, which is eV throughout.
const (
	evPerKeV = 1e3  // bin edges arrive in keV
	evPerTeV = 1e12 // ref and cutoff parameters are in TeV
	ergPerEV = 1.60217656e-12
)

// Fixed evaluator settings shared by every channel. Fit drivers call Calc
// thousands of times per fit, so the particle grids stay coarse and the
// evaluator's log-space sampling stays off.
const (
	lorentzMin             = 1e5
	lorentzMax             = 1e10
	lorentzPointsPerDecade = 30

	// Proton energy at which pion-decay evaluators switch production models.
	transitionEnergyEV = 1e10
)

// Errors returned by model construction and evaluation. Evaluator failures
// are not remapped: errors from the [onezone.Library] pass through wrapped
// with the model name only.
var (
	ErrUnknownChannel  = errors.New("emission: unknown channel")
	ErrNilLibrary      = errors.New("emission: nil onezone library")
	ErrParamCount      = errors.New("emission: parameter count mismatch")
	ErrCurveLength     = errors.New("emission: evaluator curve length mismatch")
	ErrObservationSize = errors.New("emission: observation length does not match bins")
	ErrTooFewBins      = errors.New("emission: guess needs at least two bins")
	ErrZeroModelFlux   = errors.New("emission: model flux integrates to zero")
)

// Model adapts one photon-production channel of a one-zone emission library
// to the [fit.Model] contract. All three channels share the evaluation
// pipeline and differ only in parameter schema and in which evaluator method
// produces the curve.
//
// A Model is not safe for concurrent use.
type Model struct {
	name    string
	channel Channel
	lib     onezone.Library
	logger  zerolog.Logger
	params  []*fit.Parameter
}

var (
	_ fit.Model   = (*Model)(nil)
	_ fit.Guesser = (*Model)(nil)
)

// New builds a model for the given channel backed by lib.
func New(ch Channel, lib onezone.Library, opts ...Option) (*Model, error) {
	if !ch.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, int(ch))
	}

	if lib == nil {
		return nil, ErrNilLibrary
	}

	cfg := applyOptions(ch, opts...)

	specs := ch.Schema()
	params := make([]*fit.Parameter, len(specs))
	for i, s := range specs {
		params[i] = fit.MustParameter(s)
	}

	return &Model{
		name:    cfg.name,
		channel: ch,
		lib:     lib,
		logger:  cfg.logger,
		params:  params,
	}, nil
}

// NewInverseCompton builds an inverse-Compton model backed by lib.
func NewInverseCompton(lib onezone.Library, opts ...Option) (*Model, error) {
	return New(ChannelInverseCompton, lib, opts...)
}

// NewSynchrotron builds a synchrotron model backed by lib.
func NewSynchrotron(lib onezone.Library, opts ...Option) (*Model, error) {
	return New(ChannelSynchrotron, lib, opts...)
}

// NewPionDecay builds a pion-decay model backed by lib.
func NewPionDecay(lib onezone.Library, opts ...Option) (*Model, error) {
	return New(ChannelPionDecay, lib, opts...)
}

// Name returns the model instance name.
func (m *Model) Name() string { return m.name }

// Channel returns the model's photon-production channel.
func (m *Model) Channel() Channel { return m.channel }

// Params returns the live parameter set in schema order.
func (m *Model) Params() []*fit.Parameter { return m.params }

// Param returns the parameter with the given schema name, or nil.
func (m *Model) Param(name string) *fit.Parameter {
	for _, p := range m.params {
		if p.Name() == name {
			return p
		}
	}

	return nil
}

// Calc evaluates the channel's photon spectrum for parameter vector p over
// contiguous bins given by their keV edges, and returns the per-bin photon
// flux (one value per bin).
//
// Each call merges the edges into a boundary grid, converts it to eV,
// acquires a fresh evaluator for the channel, extracts the flux-density
// curve, releases the evaluator, and integrates the curve over each bin with
// the trapezoid rule.
func (m *Model) Calc(p, lo, hi []float64) ([]float64, error) {
	if len(p) != len(m.params) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrParamCount, len(p), len(m.params))
	}

	merged, err := grid.Merge(lo, hi)
	if err != nil {
		return nil, err
	}

	energies := make([]float64, len(merged))
	vecmath.ScaleBlock(energies, merged, evPerKeV)

	curve, err := m.spectrum(energies, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.name, err)
	}

	if len(curve) != len(energies) {
		return nil, fmt.Errorf("%w: %d values on a %d-point grid",
			ErrCurveLength, len(curve), len(energies))
	}

	photons, err := grid.TrapezoidBins(energies, curve)
	if err != nil {
		return nil, err
	}

	m.logCalc(energies, curve, p)

	return photons, nil
}

// spectrum acquires an evaluator for the channel, extracts its flux-density
// curve and releases it again before returning. The curve is copied out:
// evaluators may hand back internal buffers that do not survive Close.
func (m *Model) spectrum(energies, p []float64) (curve []float64, err error) {
	var raw []float64

	switch m.channel {
	case ChannelInverseCompton, ChannelSynchrotron:
		var ev onezone.ElectronEvaluator

		ev, err = m.lib.Electron(m.electronConfig(energies, p))
		if err != nil {
			return nil, err
		}
		defer closeEvaluator(ev, &err)

		if m.channel == ChannelInverseCompton {
			raw, err = ev.InverseCompton()
		} else {
			raw, err = ev.Synchrotron()
		}

	case ChannelPionDecay:
		var ev onezone.ProtonEvaluator

		ev, err = m.lib.Proton(m.protonConfig(energies, p))
		if err != nil {
			return nil, err
		}
		defer closeEvaluator(ev, &err)

		raw, err = ev.PionDecay()

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownChannel, int(m.channel))
	}

	if err != nil {
		return nil, err
	}

	// Copy before the deferred Close releases the evaluator's buffers.
	curve = append([]float64(nil), raw...)

	return curve, nil
}

// closeEvaluator releases ev and surfaces the Close error unless an earlier
// one is already pending.
func closeEvaluator(ev interface{ Close() error }, err *error) {
	if cerr := ev.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func (m *Model) electronConfig(energies, p []float64) onezone.ElectronConfig {
	cfg := onezone.ElectronConfig{
		Energies:               energies,
		Amplitude:              p[idxAmpl],
		Index:                  p[idxIndex],
		NormEnergy:             p[idxRef] * evPerTeV,
		Cutoff:                 p[idxCutoff] * evPerTeV,
		Beta:                   p[idxBeta],
		SeedFields:             []onezone.SeedField{onezone.SeedCMB},
		NoLog:                  true,
		LorentzMin:             lorentzMin,
		LorentzMax:             lorentzMax,
		LorentzPointsPerDecade: lorentzPointsPerDecade,
	}

	if m.channel == ChannelSynchrotron {
		cfg.Field = p[idxField]
	}

	return cfg
}

func (m *Model) protonConfig(energies, p []float64) onezone.ProtonConfig {
	cfg := onezone.ProtonConfig{
		Energies:         energies,
		Amplitude:        p[idxAmpl],
		Index:            p[idxIndex],
		NormEnergy:       p[idxRef] * evPerTeV,
		Beta:             p[idxBeta],
		SeedFields:       []onezone.SeedField{onezone.SeedCMB},
		NoLog:            true,
		TransitionEnergy: transitionEnergyEV,
	}

	// A zero cutoff parameter means the distribution has no exponential
	// cutoff, not a cutoff at zero energy.
	if c := p[idxCutoff]; c != 0 {
		cut := c * evPerTeV
		cfg.Cutoff = &cut
	}

	return cfg
}

// logCalc emits the per-evaluation diagnostic: grid bounds, parameter vector
// and the energy flux of the raw curve in erg.
func (m *Model) logCalc(energies, curve, p []float64) {
	weighted := make([]float64, len(energies))
	vecmath.MulBlock(weighted, energies, curve)

	eflux := ergPerEV * integrate.Trapezoidal(energies, weighted)

	m.logger.Info().
		Str("model", m.name).
		Str("channel", m.channel.String()).
		Float64("emin_ev", energies[0]).
		Float64("emax_ev", energies[len(energies)-1]).
		Int("points", len(energies)).
		Floats64("params", p).
		Float64("eflux_erg", eflux).
		Msg("calc")
}

// Guess rescales the amplitude so the model's integrated photon flux matches
// the observed per-bin flux, evaluating once at the current parameter values.
// It implements [fit.Guesser].
func (m *Model) Guess(observed, lo, hi []float64) error {
	if len(observed) != len(lo) {
		return fmt.Errorf("%w: got %d observations for %d bins",
			ErrObservationSize, len(observed), len(lo))
	}

	if len(lo) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewBins, len(lo))
	}

	photons, err := m.Calc(fit.Values(m.params), lo, hi)
	if err != nil {
		return err
	}

	widths, err := grid.Widths(lo, hi)
	if err != nil {
		return err
	}

	counts := make([]float64, len(observed))
	vecmath.MulBlock(counts, observed, widths)

	modelFlux := integrate.Trapezoidal(lo, photons)
	if modelFlux == 0 {
		return fmt.Errorf("%s: %w", m.name, ErrZeroModelFlux)
	}

	observedFlux := integrate.Trapezoidal(lo, counts)

	ampl := m.params[idxAmpl]

	return ampl.Set(ampl.Val() * observedFlux / modelFlux)
}
