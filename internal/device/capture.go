// SPDX-License-Identifier: MIT

package device

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gen2brain/malgo"
)

// Capture device defaults: mono 16-bit at 44.1kHz, pulled in 20ms
// periods.
const (
	DefaultCaptureChannels     = 1
	DefaultCapturePeriodFrames = 882
)

var ErrCaptureClosed = errors.New("capture device closed")

// CaptureConfig configures a recording device. Zero values fall back
// to the defaults above.
type CaptureConfig struct {
	SampleRate int
	Channels   int

	// PeriodFrames is the number of frames delivered per callback.
	PeriodFrames int

	// Logger receives device lifecycle and backend events.
	Logger *slog.Logger
}

func (c *CaptureConfig) fillDefaults() {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Channels <= 0 {
		c.Channels = DefaultCaptureChannels
	}
	if c.PeriodFrames <= 0 {
		c.PeriodFrames = DefaultCapturePeriodFrames
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// ProbeCapture checks that a capture backend can be brought up at all,
// without opening a device.
func ProbeCapture() error {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("initializing capture context: %w", err)
	}

	err = ctx.Uninit()
	ctx.Free()
	if err != nil {
		return fmt.Errorf("releasing capture context: %w", err)
	}

	return nil
}

// Capture wraps a malgo capture device. Incoming PCM is converted to
// int16 samples and handed to the callback on the backend's thread.
type Capture struct {
	cfg CaptureConfig

	mu     sync.Mutex
	ctx    *malgo.AllocatedContext
	dev    *malgo.Device
	closed bool

	samples []int16
}

// NewCapture opens the default capture device. onSamples receives each
// period of interleaved 16-bit samples; the slice is reused between
// callbacks, so implementations must copy what they keep.
func NewCapture(cfg CaptureConfig, onSamples func([]int16)) (*Capture, error) {
	cfg.fillDefaults()

	logCb := func(message string) {
		cfg.Logger.Debug("capture backend", slog.String("message", message))
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, logCb)
	if err != nil {
		return nil, fmt.Errorf("initializing capture context: %w", err)
	}

	c := &Capture{cfg: cfg, ctx: ctx}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = malgo.FormatS16
	devCfg.Capture.Channels = uint32(cfg.Channels)
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.PeriodFrames)

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, in []byte, frames uint32) {
			n := int(frames) * cfg.Channels
			if cap(c.samples) < n {
				c.samples = make([]int16, n)
			}
			c.samples = c.samples[:n]

			for i := range n {
				c.samples[i] = int16(binary.LittleEndian.Uint16(in[i*2 : i*2+2]))
			}

			onSamples(c.samples)
		},
	}

	dev, err := malgo.InitDevice(ctx.Context, devCfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("opening capture device: %w", err)
	}

	c.dev = dev

	cfg.Logger.Debug("capture device ready",
		slog.Int("sample_rate", cfg.SampleRate),
		slog.Int("channels", cfg.Channels),
	)

	return c, nil
}

// SampleRate reports the configured capture rate in Hz.
func (c *Capture) SampleRate() int { return c.cfg.SampleRate }

// Channels reports the configured channel count.
func (c *Capture) Channels() int { return c.cfg.Channels }

// Start begins pulling audio from the device.
func (c *Capture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCaptureClosed
	}

	if err := c.dev.Start(); err != nil {
		return fmt.Errorf("starting capture: %w", err)
	}

	return nil
}

// Stop pauses capture without releasing the device.
func (c *Capture) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCaptureClosed
	}

	if err := c.dev.Stop(); err != nil {
		return fmt.Errorf("stopping capture: %w", err)
	}

	return nil
}

// Close releases the device and its backend context. The capture
// cannot be restarted afterwards.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.dev.Uninit()

	if err := c.ctx.Uninit(); err != nil {
		c.ctx.Free()
		return fmt.Errorf("releasing capture context: %w", err)
	}
	c.ctx.Free()

	return nil
}
