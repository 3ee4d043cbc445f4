// SPDX-License-Identifier: MIT

package auris

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aurisaudio/auris/internal/device"
)

// ErrAlreadyInitialized is returned by Init and InitWith when the
// playback backend is already up.
var ErrAlreadyInitialized = device.ErrPlaybackInitialized

// Options configures the playback backend for InitWith.
type Options struct {
	// SampleRate of the output device in Hz. Defaults to 44100.
	SampleRate int

	// BufferSize is the device buffer length. Larger values survive
	// scheduling hiccups, smaller values cut latency. Defaults to 50ms.
	BufferSize time.Duration

	// Logger receives backend diagnostics at debug level.
	Logger *slog.Logger
}

// Init brings up the playback backend with default options. Calling it
// is optional; the backend starts lazily on the first Play otherwise.
func Init() error {
	return InitWith(Options{})
}

// InitWith brings up the playback backend with explicit options. It
// must run before any Play for the options to take effect.
func InitWith(opts Options) error {
	err := device.InitPlayback(device.PlaybackOptions{
		SampleRate: opts.SampleRate,
		BufferSize: opts.BufferSize,
		Logger:     opts.Logger,
	})
	if err != nil {
		if err == device.ErrPlaybackInitialized {
			return err
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	return nil
}
