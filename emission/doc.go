// Package emission adapts one-zone radiative-emission models to the
// fit.Model contract of spectral-fitting drivers.
//
// Three photon-production channels are supported through a single adapter
// type parameterized by [Channel]:
//
//   - Inverse-Compton scattering of CMB photons by relativistic electrons
//   - Synchrotron radiation from the same electron population in a magnetic field
//   - Pion-decay photons from inelastic proton collisions
//
// The adapter owns the fit-facing parameter schema (spectral index,
// reference energy, amplitude, cutoff, curvature, plus the field strength
// for synchrotron), converts between the driver's units and the evaluator
// contract, and folds the returned flux-density curve into per-bin photon
// fluxes.
//
// # Units
//
// Bin edges arrive in keV, the X-ray convention of fitting frameworks, and
// are scaled to the eV grid evaluators expect. The ref and cutoff
// parameters are in TeV and rescaled the same way.
//
// # Usage
//
// Wrap a one-zone library, then hand the model to a fit driver:
//
//	ic, err := emission.NewInverseCompton(lib)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model := fit.NewCached(ic, 0)
//
//	photons, err := model.Calc(fit.Values(model.Params()), lo, hi)
//
// Every Calc acquires a fresh evaluator from the library and releases it
// before integrating, so evaluator-internal particle grids never outlive a
// single evaluation. One diagnostic line per evaluation goes to standard
// output; silence it with
//
//	emission.NewPionDecay(lib, emission.WithLogger(zerolog.Nop()))
package emission
