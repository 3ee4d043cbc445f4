// SPDX-License-Identifier: MIT

package auris

import "time"

// Vector is a position, velocity or direction in 3D listener space.
// The coordinate system follows the usual audio convention: +X right,
// +Y up, -Z ahead of the listener.
type Vector struct {
	X, Y, Z float32
}

// AudioController is the common control surface of Sound and Music.
//
// Transport methods (Play, Pause, Stop) drive the lifecycle described
// by State. All parameter setters may be called in any state and take
// effect immediately, or on the next Play for parameters that shape
// the stream itself.
type AudioController interface {
	// Play starts playback, resumes a paused instance, or restarts a
	// stopped one from the cursor position.
	Play() error

	// Pause suspends playback keeping the current position.
	Pause() error

	// Stop halts playback and rewinds the cursor to the start.
	Stop() error

	// Connect attaches a reverb effect to the instance; nil detaches.
	// Takes effect when playback (re)starts.
	Connect(effect *ReverbEffect) error

	State() State
	IsPlaying() bool

	// SetVolume scales the source amplitude; 1.0 is unity gain.
	SetVolume(volume float64) error
	Volume() float64

	// SetMinVolume sets the lower clamp applied after distance
	// attenuation.
	SetMinVolume(volume float64) error
	MinVolume() float64

	// SetMaxVolume sets the upper clamp applied after distance
	// attenuation.
	SetMaxVolume(volume float64) error
	MaxVolume() float64

	// SetLooping makes playback wrap around seamlessly at the end.
	SetLooping(looping bool) error
	IsLooping() bool

	// SetPitch shifts playback speed and pitch together; 1.0 is the
	// natural rate.
	SetPitch(pitch float64) error
	Pitch() float64

	// SetRelative interprets the source position relative to the
	// listener instead of in world coordinates.
	SetRelative(relative bool) error
	IsRelative() bool

	// SetPosition places the source in space and enables
	// spatialization for it.
	SetPosition(pos Vector) error
	Position() Vector

	// SetVelocity sets the source velocity used for doppler shift.
	SetVelocity(vel Vector) error
	Velocity() Vector

	// SetDirection orients the source.
	SetDirection(dir Vector) error
	Direction() Vector

	// SetMaxDistance caps the distance used for attenuation.
	SetMaxDistance(distance float64) error
	MaxDistance() float64

	// SetReferenceDistance sets the distance at which the source plays
	// at unity gain.
	SetReferenceDistance(distance float64) error
	ReferenceDistance() float64

	// SetAttenuation sets the rolloff factor of the distance model;
	// 0 disables distance attenuation.
	SetAttenuation(factor float64) error
	Attenuation() float64

	// SetAirAbsorptionFactor scales high-frequency loss over distance
	// (0 disables, 10 is maximal).
	SetAirAbsorptionFactor(factor float64) error
	AirAbsorptionFactor() float64

	// SetDirectChannel bypasses all spatial processing and plays the
	// stream as authored.
	SetDirectChannel(direct bool) error
	DirectChannel() bool

	// SetOffset moves the playback cursor.
	SetOffset(offset time.Duration) error

	// Offset reports the position currently heard.
	Offset() time.Duration

	// Duration reports the total stream length, or 0 when unknown.
	Duration() time.Duration

	// Close stops playback and releases the instance's resources.
	Close() error
}
