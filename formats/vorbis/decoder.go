// SPDX-License-Identifier: MIT

package vorbis

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfreymuth/oggvorbis"

	"github.com/aurisaudio/auris/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// positioner is the optional seeking side of oggvorbis.Reader.
type positioner interface {
	SetPosition(int64) error
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int64
	tags       audio.Tags
}

func (s *source) SampleRate() int  { return s.sampleRate }
func (s *source) Channels() int    { return s.channels }
func (s *source) Close() error     { return nil }
func (s *source) BufSize() int     { return 4096 }
func (s *source) Frames() int64    { return s.frames }
func (s *source) Tags() audio.Tags { return s.tags }

func (s *source) SeekFrame(frame int64) error {
	p, ok := s.dec.(positioner)
	if !ok {
		return fmt.Errorf("vorbis stream not seekable")
	}

	if err := p.SetPosition(frame); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads interleaved float32 values directly, and reports
	// the number of values written (not frames)
	n, err := s.dec.Read(dst)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frames:     dec.Length(),
		tags:       tagsFromComments(dec.CommentHeader().Comments),
	}, nil
}

// tagsFromComments maps Vorbis comment fields ("KEY=value" pairs) onto
// the shared tag structure. Keys are case-insensitive per the Vorbis
// comment specification.
func tagsFromComments(comments []string) audio.Tags {
	var tags audio.Tags

	for _, c := range comments {
		key, value, found := strings.Cut(c, "=")
		if !found {
			continue
		}

		switch strings.ToUpper(key) {
		case "TITLE":
			tags.Title = value
		case "ARTIST":
			tags.Artist = value
		case "ALBUM":
			tags.Album = value
		case "GENRE":
			tags.Genre = value
		case "DATE":
			tags.Date = value
		case "COMMENT", "DESCRIPTION":
			tags.Comment = value
		case "COPYRIGHT":
			tags.Copyright = value
		case "ENCODER":
			tags.Software = value
		case "TRACKNUMBER":
			tags.TrackNbr = value
		}
	}

	return tags
}
