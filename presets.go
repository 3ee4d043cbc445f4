// SPDX-License-Identifier: MIT

package auris

// ReverbPreset selects one of the standard EFX environment tables.
type ReverbPreset int

const (
	PresetGeneric ReverbPreset = iota
	PresetPaddedCell
	PresetRoom
	PresetBathroom
	PresetLivingRoom
	PresetStoneRoom
	PresetAuditorium
	PresetConcertHall
	PresetCave
	PresetArena
	PresetHangar
	PresetHallway
	PresetForest
	PresetMountains
	PresetPlain
	PresetUnderwater
)

func (p ReverbPreset) String() string {
	switch p {
	case PresetGeneric:
		return "generic"
	case PresetPaddedCell:
		return "padded cell"
	case PresetRoom:
		return "room"
	case PresetBathroom:
		return "bathroom"
	case PresetLivingRoom:
		return "living room"
	case PresetStoneRoom:
		return "stone room"
	case PresetAuditorium:
		return "auditorium"
	case PresetConcertHall:
		return "concert hall"
	case PresetCave:
		return "cave"
	case PresetArena:
		return "arena"
	case PresetHangar:
		return "hangar"
	case PresetHallway:
		return "hallway"
	case PresetForest:
		return "forest"
	case PresetMountains:
		return "mountains"
	case PresetPlain:
		return "plain"
	case PresetUnderwater:
		return "underwater"
	default:
		return "unknown"
	}
}

// Properties returns the preset's parameter table. Unknown presets
// fall back to PresetGeneric.
func (p ReverbPreset) Properties() ReverbProperties {
	if props, ok := reverbPresets[p]; ok {
		return props
	}
	return reverbPresets[PresetGeneric]
}

// Values from the EFX environment preset tables.
var reverbPresets = map[ReverbPreset]ReverbProperties{
	PresetGeneric: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.8913,
		DecayTime: 1.49, DecayHFRatio: 0.83,
		ReflectionsGain: 0.0500, ReflectionsDelay: 0.007,
		LateReverbGain: 1.2589, LateReverbDelay: 0.011,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetPaddedCell: {
		Density: 0.1715, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.0010,
		DecayTime: 0.17, DecayHFRatio: 0.10,
		ReflectionsGain: 0.2500, ReflectionsDelay: 0.001,
		LateReverbGain: 1.2691, LateReverbDelay: 0.002,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetRoom: {
		Density: 0.4287, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.5929,
		DecayTime: 0.40, DecayHFRatio: 0.83,
		ReflectionsGain: 0.1503, ReflectionsDelay: 0.002,
		LateReverbGain: 1.0629, LateReverbDelay: 0.003,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetBathroom: {
		Density: 0.1715, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.2512,
		DecayTime: 1.49, DecayHFRatio: 0.54,
		ReflectionsGain: 0.6531, ReflectionsDelay: 0.007,
		LateReverbGain: 3.2734, LateReverbDelay: 0.011,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetLivingRoom: {
		Density: 0.9766, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.0010,
		DecayTime: 0.50, DecayHFRatio: 0.10,
		ReflectionsGain: 0.2051, ReflectionsDelay: 0.003,
		LateReverbGain: 0.2805, LateReverbDelay: 0.004,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetStoneRoom: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.7079,
		DecayTime: 2.31, DecayHFRatio: 0.64,
		ReflectionsGain: 0.4411, ReflectionsDelay: 0.012,
		LateReverbGain: 1.1003, LateReverbDelay: 0.017,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetAuditorium: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.5781,
		DecayTime: 4.32, DecayHFRatio: 0.59,
		ReflectionsGain: 0.4032, ReflectionsDelay: 0.020,
		LateReverbGain: 0.7170, LateReverbDelay: 0.030,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetConcertHall: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.5623,
		DecayTime: 3.92, DecayHFRatio: 0.70,
		ReflectionsGain: 0.2427, ReflectionsDelay: 0.020,
		LateReverbGain: 0.9977, LateReverbDelay: 0.029,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetCave: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 1.0000,
		DecayTime: 2.91, DecayHFRatio: 1.30,
		ReflectionsGain: 0.5000, ReflectionsDelay: 0.015,
		LateReverbGain: 0.7063, LateReverbDelay: 0.022,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetArena: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.4477,
		DecayTime: 7.24, DecayHFRatio: 0.33,
		ReflectionsGain: 0.2612, ReflectionsDelay: 0.020,
		LateReverbGain: 1.0186, LateReverbDelay: 0.030,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetHangar: {
		Density: 1.0000, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.3162,
		DecayTime: 10.05, DecayHFRatio: 0.23,
		ReflectionsGain: 0.5000, ReflectionsDelay: 0.020,
		LateReverbGain: 1.2560, LateReverbDelay: 0.030,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetHallway: {
		Density: 0.3645, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.7079,
		DecayTime: 1.49, DecayHFRatio: 0.59,
		ReflectionsGain: 0.2458, ReflectionsDelay: 0.007,
		LateReverbGain: 1.6615, LateReverbDelay: 0.011,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetForest: {
		Density: 1.0000, Diffusion: 0.3000, Gain: 0.3162, GainHF: 0.0224,
		DecayTime: 1.49, DecayHFRatio: 0.54,
		ReflectionsGain: 0.0525, ReflectionsDelay: 0.162,
		LateReverbGain: 0.7682, LateReverbDelay: 0.088,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetMountains: {
		Density: 1.0000, Diffusion: 0.2700, Gain: 0.3162, GainHF: 0.0562,
		DecayTime: 1.49, DecayHFRatio: 0.21,
		ReflectionsGain: 0.0407, ReflectionsDelay: 0.300,
		LateReverbGain: 0.1919, LateReverbDelay: 0.100,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetPlain: {
		Density: 1.0000, Diffusion: 0.2100, Gain: 0.3162, GainHF: 0.1000,
		DecayTime: 1.49, DecayHFRatio: 0.50,
		ReflectionsGain: 0.0585, ReflectionsDelay: 0.179,
		LateReverbGain: 0.1089, LateReverbDelay: 0.100,
		AirAbsorptionGainHF: 0.9943,
	},
	PresetUnderwater: {
		Density: 0.3645, Diffusion: 1.0000, Gain: 0.3162, GainHF: 0.0100,
		DecayTime: 1.49, DecayHFRatio: 0.10,
		ReflectionsGain: 0.5963, ReflectionsDelay: 0.007,
		LateReverbGain: 7.0795, LateReverbDelay: 0.011,
		AirAbsorptionGainHF: 0.9943,
	},
}
