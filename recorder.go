// SPDX-License-Identifier: MIT

package auris

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aurisaudio/auris/audio"
	"github.com/aurisaudio/auris/formats/wav"
	"github.com/aurisaudio/auris/internal/device"
	"github.com/aurisaudio/auris/utils"
)

// RecordContext represents an initialized capture backend. Obtain one
// with InitCapture, then create recorders from it.
type RecordContext struct {
	logger *slog.Logger
}

// InitCapture verifies that a capture backend is available and returns
// a context for creating recorders.
func InitCapture() (*RecordContext, error) {
	if err := device.ProbeCapture(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	return &RecordContext{logger: slog.Default()}, nil
}

// RecorderConfig configures a Recorder. Zero values record mono 16-bit
// at 44.1kHz.
type RecorderConfig struct {
	SampleRate int
	Channels   int

	// Logger receives backend diagnostics at debug level.
	Logger *slog.Logger
}

// captureDevice is the part of device.Capture the recorder uses.
// Tests substitute a fake and push samples directly.
type captureDevice interface {
	Start() error
	Stop() error
	Close() error
	SampleRate() int
	Channels() int
}

// Recorder captures audio from the default input device into memory.
// Samples accumulate across Start/Stop cycles until Reset.
type Recorder struct {
	mu        sync.Mutex
	dev       captureDevice
	samples   []int16
	recording bool
	closed    bool
}

// NewRecorder opens the default capture device.
func (c *RecordContext) NewRecorder(cfg RecorderConfig) (*Recorder, error) {
	if cfg.Logger == nil {
		cfg.Logger = c.logger
	}

	r := &Recorder{}

	dev, err := device.NewCapture(device.CaptureConfig{
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
		Logger:     cfg.Logger,
	}, r.appendSamples)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	r.dev = dev

	return r, nil
}

// newRecorderWith wires a recorder to an already-open device. Used by
// tests.
func newRecorderWith(dev captureDevice) *Recorder {
	return &Recorder{dev: dev}
}

// appendSamples runs on the backend's capture thread.
func (r *Recorder) appendSamples(chunk []int16) {
	r.mu.Lock()
	if r.recording {
		r.samples = append(r.samples, chunk...)
	}
	r.mu.Unlock()
}

// Start begins accumulating captured samples.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.recording {
		return nil
	}

	if err := r.dev.Start(); err != nil {
		return err
	}
	r.recording = true

	return nil
}

// Stop halts capture. The accumulated samples stay available.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if !r.recording {
		return nil
	}

	r.recording = false

	return r.dev.Stop()
}

// IsRecording reports whether capture is running.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// SampleRate reports the capture rate in Hz.
func (r *Recorder) SampleRate() int { return r.dev.SampleRate() }

// Channels reports the capture channel count.
func (r *Recorder) Channels() int { return r.dev.Channels() }

// Samples returns a copy of everything captured so far.
func (r *Recorder) Samples() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int16, len(r.samples))
	copy(out, r.samples)
	return out
}

// Reset discards the accumulated samples.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.samples = r.samples[:0]
	r.mu.Unlock()
}

// SaveToFile writes the capture as a 16-bit PCM WAV file. sampleRate
// selects the output rate; zero keeps the capture rate, anything else
// resamples.
func (r *Recorder) SaveToFile(path string, sampleRate int) error {
	r.mu.Lock()
	samples := make([]int16, len(r.samples))
	copy(samples, r.samples)
	r.mu.Unlock()

	if len(samples) == 0 {
		return ErrNoSamples
	}

	rate := r.dev.SampleRate()
	if sampleRate > 0 && sampleRate != rate {
		resampled, err := resampleInt16(samples, rate, sampleRate, r.dev.Channels())
		if err != nil {
			return fmt.Errorf("resampling capture: %w", err)
		}
		samples = resampled
		rate = sampleRate
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	if err := wav.Encode(f, rate, r.dev.Channels(), samples); err != nil {
		f.Close()
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	return f.Close()
}

// SoundData converts the capture into a playable buffer.
func (r *Recorder) SoundData() (*SoundData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.samples) == 0 {
		return nil, ErrNoSamples
	}

	samples := make([]float32, len(r.samples))
	for i, s := range r.samples {
		samples[i] = utils.Int16ToFloat32(s)
	}

	return NewSoundData(samples, r.dev.SampleRate(), r.dev.Channels())
}

// Close stops capture and releases the device.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.recording = false
	dev := r.dev
	r.mu.Unlock()

	return dev.Close()
}

// resampleInt16 converts through float32 and runs the stream
// resampler.
func resampleInt16(samples []int16, srcRate, dstRate, channels int) ([]int16, error) {
	in := make([]float32, len(samples))
	for i, s := range samples {
		in[i] = utils.Int16ToFloat32(s)
	}

	data, err := NewSoundData(in, srcRate, channels)
	if err != nil {
		return nil, err
	}

	res := audio.NewResampler(data.source(), dstRate)

	out, err := readAllSamples(res)
	if err != nil {
		return nil, err
	}

	converted := make([]int16, len(out))
	for i, s := range out {
		converted[i] = utils.Float32ToInt16(s)
	}

	return converted, nil
}
