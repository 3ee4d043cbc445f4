// SPDX-License-Identifier: MIT

// Package auris is a small spatial audio playback library.
//
// Two playable types cover the usual split: Sound decodes a file fully
// into memory for cheap, repeatable effects, while Music streams from
// disk for long material. Both expose the same AudioController
// surface: transport (Play, Pause, Stop, looping, offset), gain
// shaping (volume, min/max clamp, pitch) and spatialization (position,
// velocity, distance attenuation, air absorption, reverb).
//
// Spatialization positions mono material around a package-level
// listener; stereo material is folded to mono first. Sources that
// never receive a spatial parameter, or that enable DirectChannel,
// play as authored.
//
// The output device opens lazily on the first Play. Call Init or
// InitWith first to pick a sample rate or buffer size. Capture runs
// through InitCapture and Recorder.
//
// WAV, MP3, Ogg Vorbis and AIFF decoders are registered out of the
// box; DefaultRegistry accepts more.
package auris
