// SPDX-License-Identifier: MIT

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/aurisaudio/auris/audio"
)

var errNotSeekable = errors.New("mp3 stream not seekable")

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	frames     int64
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // sample capacity, not bytes

// Frames reports the total decoded length, or 0 when the stream does
// not announce it.
func (s *source) Frames() int64 { return s.frames }

// SeekFrame repositions the stream, provided the underlying decoder
// was built on a seekable reader.
func (s *source) SeekFrame(frame int64) error {
	seeker, ok := s.dec.(io.Seeker)
	if !ok {
		return errNotSeekable
	}

	// 2 channels of 16-bit PCM means 4 bytes per frame
	if _, err := seeker.Seek(frame*4, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 returns 16-bit little-endian PCM bytes, stereo interleaved,
	// so each sample takes 2 bytes
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		val := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 always decodes to 2 channels; Length reports the decoded
	// byte count, or -1 when the input is not seekable
	var frames int64
	if l := dec.Length(); l > 0 {
		frames = l / 4
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		frames:     frames,
		buf:        make([]byte, 8192),
	}, nil
}
