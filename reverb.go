// SPDX-License-Identifier: MIT

package auris

import (
	"github.com/aurisaudio/auris/internal/dsp"
)

// ReverbProperties describes an environmental reverb in EFX terms.
// Gains are linear, times in seconds. Most applications start from a
// ReverbPreset and tweak from there.
type ReverbProperties struct {
	// Density of the modal structure, 0..1.
	Density float64

	// Diffusion controls echo smearing, 0..1.
	Diffusion float64

	// Gain is the master wet level.
	Gain float64

	// GainHF attenuates high frequencies of the wet path, 0..1.
	GainHF float64

	// DecayTime is the RT60 in seconds, 0.1..20.
	DecayTime float64

	// DecayHFRatio skews decay time between low and high bands.
	DecayHFRatio float64

	// ReflectionsGain and ReflectionsDelay shape the early
	// reflections.
	ReflectionsGain  float64
	ReflectionsDelay float64

	// LateReverbGain and LateReverbDelay shape the late tail.
	LateReverbGain  float64
	LateReverbDelay float64

	// AirAbsorptionGainHF is the per-meter high-frequency loss inside
	// the reverberant space.
	AirAbsorptionGainHF float64

	// RoomRolloffFactor attenuates the wet path over distance.
	RoomRolloffFactor float64
}

// ReverbEffect is a reusable environment description. Connect it to
// any number of Sound or Music instances; each gets its own tank, so
// effects carry no per-playback state.
type ReverbEffect struct {
	props ReverbProperties
}

// NewReverbEffect creates an effect from explicit properties.
func NewReverbEffect(props ReverbProperties) *ReverbEffect {
	return &ReverbEffect{props: props}
}

// NewReverbEffectFromPreset creates an effect from a preset table.
func NewReverbEffectFromPreset(preset ReverbPreset) *ReverbEffect {
	return &ReverbEffect{props: preset.Properties()}
}

// Properties returns a copy of the effect's parameters.
func (e *ReverbEffect) Properties() ReverbProperties {
	return e.props
}

// tankParams maps the EFX description onto the Schroeder tank.
func (e *ReverbEffect) tankParams() dsp.ReverbParams {
	p := e.props

	return dsp.ReverbParams{
		DecayTime: p.DecayTime,
		Damping:   dsp.Clamp(1-p.GainHF, 0, 0.9999),
		PreDelay:  p.ReflectionsDelay + p.LateReverbDelay,
		Gain:      p.Gain * p.LateReverbGain,
	}
}
