// Package onezone defines the contract between emission-model adapters and an
// external one-zone emission library.
//
// A one-zone library evolves a relativistic particle population in a single
// homogeneous region and computes the photon spectra it radiates. The physics
// lives entirely on the implementing side; this package only fixes the
// configuration passed in and the shape of what comes back, so adapters can be
// written and tested against any conforming implementation.
//
// All energies in this contract are in eV. Spectra are flux-density arrays
// aligned one-to-one with the requested energy grid.
package onezone

// SeedField names a background photon field that relativistic electrons
// scatter off to produce inverse-Compton emission.
type SeedField string

// SeedCMB is the cosmic microwave background.
const SeedCMB SeedField = "CMB"

// ElectronConfig configures an evaluator for a relativistic electron
// population with a power-law energy distribution of exponential cutoff.
type ElectronConfig struct {
	// Energies is the photon-energy grid in eV on which spectra are computed.
	// Must be strictly increasing.
	Energies []float64

	// Amplitude is the distribution normalization at NormEnergy.
	Amplitude float64

	// Index is the power-law spectral index of the particle distribution.
	Index float64

	// NormEnergy is the reference energy in eV at which Amplitude applies.
	NormEnergy float64

	// Cutoff is the exponential cutoff energy in eV.
	Cutoff float64

	// Beta is the curvature exponent of the exponential cutoff.
	Beta float64

	// Field is the magnetic field strength in Gauss, used by synchrotron
	// emission. Zero leaves the evaluator's own default in place.
	Field float64

	// SeedFields lists the background photon fields for inverse-Compton
	// scattering.
	SeedFields []SeedField

	// NoLog disables log-space sampling inside the evaluator. Fit drivers
	// keep it set: coarse fit grids are where the log-space path loses
	// numerical stability.
	NoLog bool

	// LorentzMin, LorentzMax and LorentzPointsPerDecade fix the Lorentz-factor
	// grid on which the electron distribution is sampled.
	LorentzMin             float64
	LorentzMax             float64
	LorentzPointsPerDecade int
}

// ProtonConfig configures an evaluator for a relativistic proton population.
type ProtonConfig struct {
	// Energies is the photon-energy grid in eV on which spectra are computed.
	// Must be strictly increasing.
	Energies []float64

	// Amplitude is the distribution normalization at NormEnergy.
	Amplitude float64

	// Index is the power-law spectral index of the particle distribution.
	Index float64

	// NormEnergy is the reference energy in eV at which Amplitude applies.
	NormEnergy float64

	// Cutoff is the exponential cutoff energy in eV. Nil means the
	// distribution has no exponential cutoff at all, which is distinct from
	// any finite cutoff value.
	Cutoff *float64

	// Beta is the curvature exponent of the exponential cutoff.
	Beta float64

	// SeedFields lists the background photon fields. Present for contract
	// symmetry; pion-decay emission does not scatter off them.
	SeedFields []SeedField

	// NoLog disables log-space sampling inside the evaluator.
	NoLog bool

	// TransitionEnergy is the proton energy in eV at which the evaluator
	// switches between its low- and high-energy production models.
	TransitionEnergy float64
}

// ElectronEvaluator computes photon spectra radiated by a configured electron
// population.
//
// Spectrum methods may return evaluator-internal buffers; copy anything you
// keep before calling Close or requesting another spectrum. Close releases the
// evaluator's internal arrays. For realistic particle grids these run to
// megabytes, so callers must release each evaluator as soon as the needed
// spectrum has been extracted rather than leaving them to the garbage
// collector.
type ElectronEvaluator interface {
	// InverseCompton computes the inverse-Compton flux-density spectrum on
	// the configured energy grid.
	InverseCompton() ([]float64, error)

	// Synchrotron computes the synchrotron flux-density spectrum on the
	// configured energy grid.
	Synchrotron() ([]float64, error)

	// Close releases the evaluator's internal buffers. The evaluator must not
	// be used afterwards.
	Close() error
}

// ProtonEvaluator computes photon spectra radiated by a configured proton
// population. The buffer and release discipline of [ElectronEvaluator]
// applies.
type ProtonEvaluator interface {
	// PionDecay computes the pion-decay flux-density spectrum on the
	// configured energy grid.
	PionDecay() ([]float64, error)

	// Close releases the evaluator's internal buffers.
	Close() error
}

// Library constructs evaluators. Implementations are provided by emission
// libraries outside this module; adapters treat them as opaque and propagate
// their errors unmodified.
type Library interface {
	Electron(cfg ElectronConfig) (ElectronEvaluator, error)
	Proton(cfg ProtonConfig) (ProtonEvaluator, error)
}
