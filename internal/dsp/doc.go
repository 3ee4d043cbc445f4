// SPDX-License-Identifier: MIT

// Package dsp holds the signal processing behind spatial playback:
// distance attenuation, constant-power panning, doppler shift, air
// absorption filtering and a Schroeder reverberator.
//
// Everything here operates on plain numbers and float32 sample values,
// with no knowledge of sources, voices or devices. Gains and vectors
// use float64 for headroom; the audio path stays float32.
package dsp
