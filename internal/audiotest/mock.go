// SPDX-License-Identifier: MIT

package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio data for tests. It
// implements the audio.Source interface (without importing it, to keep
// the test helper dependency-free) plus Rewind, so it can stand in for
// the rewindable streams the playback layer consumes.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate (per channel)
	generated   int // frames generated so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a mock source generating totalFrames frames
// through the given waveform function.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with a constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Frames reports the total length, satisfying the audio.Sized capability.
func (m *MockSource) Frames() int64 { return int64(m.totalFrames) }

// Rewind restarts generation from frame zero.
func (m *MockSource) Rewind() error {
	m.generated = 0
	return nil
}

// SeekFrame positions generation at an arbitrary frame, satisfying the
// audio.Seeker capability.
func (m *MockSource) SeekFrame(frame int64) error {
	if frame < 0 {
		frame = 0
	}
	if frame > int64(m.totalFrames) {
		frame = int64(m.totalFrames)
	}
	m.generated = int(frame)
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalFrames - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	for frame := 0; frame < framesToWrite; frame++ {
		frameIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(frameIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
