// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	oto "github.com/ebitengine/oto/v3"
)

// Playback device defaults. Stereo 16-bit output is fixed; voices mix
// and pan into that layout.
const (
	DefaultSampleRate = 44100
	DefaultBufferSize = 50 * time.Millisecond

	PlaybackChannels = 2
)

// ErrPlaybackInitialized is returned when InitPlayback is called after
// the device context already exists.
var ErrPlaybackInitialized = errors.New("playback device already initialized")

// PlaybackOptions configures the shared output device. Zero values
// fall back to the defaults above.
type PlaybackOptions struct {
	// SampleRate of the output device in Hz.
	SampleRate int

	// BufferSize is the device buffer length. Smaller buffers lower
	// latency at the cost of underrun risk.
	BufferSize time.Duration

	// Logger receives device lifecycle events. Defaults to slog.Default.
	Logger *slog.Logger
}

func (o *PlaybackOptions) fillDefaults() {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// The process can hold only one oto context, so the playback device is
// a package-level singleton created on first use.
var (
	playbackMu   sync.Mutex
	playbackCtx  *oto.Context
	playbackRate int
	playbackErr  error
)

// InitPlayback creates the output device with explicit options. It
// must run before any sound starts playing; afterwards the device
// configuration is fixed for the lifetime of the process.
func InitPlayback(opts PlaybackOptions) error {
	playbackMu.Lock()
	defer playbackMu.Unlock()

	if playbackCtx != nil {
		return ErrPlaybackInitialized
	}

	return initPlaybackLocked(opts)
}

// Playback returns the shared output context and its sample rate,
// creating the device with default options on first call.
func Playback() (*oto.Context, int, error) {
	playbackMu.Lock()
	defer playbackMu.Unlock()

	if playbackCtx == nil && playbackErr == nil {
		playbackErr = initPlaybackLocked(PlaybackOptions{})
	}

	return playbackCtx, playbackRate, playbackErr
}

func initPlaybackLocked(opts PlaybackOptions) error {
	opts.fillDefaults()

	op := &oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: PlaybackChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   opts.BufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("opening playback device: %w", err)
	}
	<-ready

	playbackCtx = ctx
	playbackRate = opts.SampleRate
	playbackErr = nil

	opts.Logger.Debug("playback device ready",
		slog.Int("sample_rate", opts.SampleRate),
		slog.Duration("buffer", opts.BufferSize),
	)

	return nil
}
