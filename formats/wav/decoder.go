// SPDX-License-Identifier: MIT

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/aurisaudio/auris/audio"
)

// wavReader is an interface for gowav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps a go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	tags       audio.Tags
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Tags() audio.Tags { return s.tags }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	// go-audio swallows io.EOF; a zero read means the PCM chunk ran out
	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	var maxVal float32
	switch s.bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / maxVal
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	// First pass over the chunk list picks up LIST-INFO metadata; the
	// PCM decoder gets a fresh pass from the start of the stream.
	meta := gowav.NewDecoder(rs)
	if !meta.IsValidFile() {
		return nil, ErrNotWavFile
	}
	meta.ReadMetadata()
	tags := tagsFromMetadata(meta.Metadata)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav stream: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, ErrUnsupportedWavChunks
	}

	channels := int(dec.NumChans)
	if channels == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		bitDepth:   int(dec.BitDepth),
		frames:     dec.PCMLen() / int64(channels*2),
		tags:       tags,
	}, nil
}

func tagsFromMetadata(m *gowav.Metadata) audio.Tags {
	if m == nil {
		return audio.Tags{}
	}
	return audio.Tags{
		Title:     m.Title,
		Artist:    m.Artist,
		Album:     m.Product,
		Genre:     m.Genre,
		Date:      m.CreationDate,
		Comment:   m.Comments,
		Copyright: m.Copyright,
		Software:  m.Software,
		TrackNbr:  m.TrackNbr,
	}
}
