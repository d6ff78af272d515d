package emission

import (
	"fmt"

	"github.com/cwbudde/algo-gamma/fit"
)

// Channel identifies a photon-production channel.
type Channel int

const (
	// ChannelInverseCompton is inverse-Compton scattering of seed photons by
	// relativistic electrons.
	ChannelInverseCompton Channel = iota

	// ChannelSynchrotron is synchrotron radiation from relativistic electrons
	// in a magnetic field.
	ChannelSynchrotron

	// ChannelPionDecay is photon emission from neutral-pion decay in
	// inelastic proton collisions.
	ChannelPionDecay

	channelCount
)

var channelNames = [channelCount]string{
	"inverse-compton",
	"synchrotron",
	"pion-decay",
}

// Default instance names, used when WithName is not given.
var channelDefaultNames = [channelCount]string{
	"IC",
	"sync",
	"pp",
}

// String returns the channel name.
func (c Channel) String() string {
	if c.Valid() {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c >= 0 && c < channelCount
}

// Parameter vector layout shared by all channels. Synchrotron appends the
// field strength; the others stop at beta.
const (
	idxIndex = iota
	idxRef
	idxAmpl
	idxCutoff
	idxBeta
	idxField
)

// Schema returns the channel's parameter schema in Calc order. Energies
// (ref, cutoff) are in units of 10^12 eV. For pion-decay a cutoff of 0 means
// the particle distribution has no exponential cutoff.
//
// The returned slice is fresh on every call; mutating it does not affect
// models.
func (c Channel) Schema() []fit.ParamSpec {
	switch c {
	case ChannelInverseCompton, ChannelSynchrotron:
		specs := []fit.ParamSpec{
			{Name: "index", Val: 2.0, Min: -10, Max: 10},
			{Name: "ref", Val: 20, Min: 0, Max: fit.NoMax, Frozen: true, Unit: "TeV"},
			{Name: "ampl", Val: 1, Min: 0, Max: fit.NoMax},
			{Name: "cutoff", Val: 1e15, Min: 0, Max: fit.NoMax, Frozen: true, Unit: "TeV"},
			{Name: "beta", Val: 1, Min: 0, Max: 10, Frozen: true},
		}
		if c == ChannelSynchrotron {
			specs = append(specs, fit.ParamSpec{Name: "B", Val: 1, Min: 0, Max: 10, Frozen: true, Unit: "G"})
		}

		return specs

	case ChannelPionDecay:
		return []fit.ParamSpec{
			{Name: "index", Val: 2.1, Min: -10, Max: 10},
			{Name: "ref", Val: 60, Min: 0, Max: fit.NoMax, Frozen: true, Unit: "TeV"},
			{Name: "ampl", Val: 100, Min: 0, Max: fit.NoMax},
			{Name: "cutoff", Val: 0, Min: 0, Max: fit.NoMax, Frozen: true, Unit: "TeV"},
			{Name: "beta", Val: 1, Min: 0, Max: 10, Frozen: true},
		}
	}

	return nil
}
