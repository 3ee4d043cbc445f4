// SPDX-License-Identifier: MIT

package auris

import "errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for the
	// file's extension.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrNoSamples indicates a stream or buffer contains no audio.
	ErrNoSamples = errors.New("no samples")

	// ErrClosed indicates the instance was already closed.
	ErrClosed = errors.New("already closed")

	// ErrInvalidChannels indicates an unsupported channel layout.
	ErrInvalidChannels = errors.New("invalid channel count")

	// ErrBackendUnavailable indicates no audio backend could be
	// initialized on this system.
	ErrBackendUnavailable = errors.New("audio backend unavailable")
)
