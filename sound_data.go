// SPDX-License-Identifier: MIT

package auris

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aurisaudio/auris/audio"
)

// SoundData is a fully decoded, immutable sample buffer. One SoundData
// can back any number of Sound instances at once, so load a sample
// once and share it.
type SoundData struct {
	samples    []float32 // interleaved
	sampleRate int
	channels   int
	tags       audio.Tags
}

// LoadSoundData decodes an entire audio file into memory. The decoder
// is picked from DefaultRegistry by file extension.
func LoadSoundData(path string) (*SoundData, error) {
	dec, ok := DefaultRegistry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer src.Close()

	data, err := readAllSamples(src)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	sd := &SoundData{
		samples:    data,
		sampleRate: src.SampleRate(),
		channels:   src.Channels(),
	}

	if tagged, ok := src.(audio.Tagged); ok {
		sd.tags = tagged.Tags()
	}

	if len(sd.samples) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoSamples)
	}

	return sd, nil
}

// NewSoundData wraps raw interleaved samples. The slice is retained,
// not copied; callers must not mutate it afterwards.
func NewSoundData(samples []float32, sampleRate, channels int) (*SoundData, error) {
	if channels < 1 || channels > 2 {
		return nil, ErrInvalidChannels
	}
	if len(samples) == 0 || len(samples)%channels != 0 {
		return nil, ErrNoSamples
	}

	return &SoundData{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (d *SoundData) SampleRate() int  { return d.sampleRate }
func (d *SoundData) Channels() int    { return d.channels }
func (d *SoundData) Tags() audio.Tags { return d.tags }

// Frames reports the length in frames.
func (d *SoundData) Frames() int64 {
	return int64(len(d.samples) / d.channels)
}

// Duration reports the playback length at the natural rate.
func (d *SoundData) Duration() time.Duration {
	if d.sampleRate <= 0 {
		return 0
	}
	return framesToDuration(d.Frames(), d.sampleRate)
}

// source creates an independent read cursor over the shared buffer.
func (d *SoundData) source() *memSource {
	return &memSource{data: d}
}

func readAllSamples(src audio.Source) ([]float32, error) {
	var out []float32

	buf := make([]float32, max(src.BufSize(), 4096))
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// memSource streams a SoundData buffer. It satisfies the full set of
// playback capabilities: sized, seekable, rewindable and tagged.
type memSource struct {
	data *SoundData
	pos  int // sample index
}

func (m *memSource) SampleRate() int  { return m.data.sampleRate }
func (m *memSource) Channels() int    { return m.data.channels }
func (m *memSource) BufSize() int     { return 4096 }
func (m *memSource) Close() error     { return nil }
func (m *memSource) Frames() int64    { return m.data.Frames() }
func (m *memSource) Tags() audio.Tags { return m.data.tags }

func (m *memSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= len(m.data.samples) {
		return 0, io.EOF
	}

	n := copy(dst, m.data.samples[m.pos:])
	n = (n / m.data.channels) * m.data.channels
	m.pos += n

	if m.pos >= len(m.data.samples) {
		return n, io.EOF
	}

	return n, nil
}

func (m *memSource) Rewind() error {
	m.pos = 0
	return nil
}

func (m *memSource) SeekFrame(frame int64) error {
	if frame < 0 {
		frame = 0
	}
	if frame > m.data.Frames() {
		frame = m.data.Frames()
	}

	m.pos = int(frame) * m.data.channels

	return nil
}

func framesToDuration(frames int64, rate int) time.Duration {
	return time.Duration(frames * int64(time.Second) / int64(rate))
}

func durationToFrames(d time.Duration, rate int) int64 {
	return int64(d) * int64(rate) / int64(time.Second)
}
