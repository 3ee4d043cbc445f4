// SPDX-License-Identifier: MIT

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Sized is implemented by sources that know their total length.
type Sized interface {
	// Frames reports the total number of frames, or 0 when unknown.
	Frames() int64
}

// Seeker is implemented by sources that support sample-accurate seeking.
type Seeker interface {
	SeekFrame(frame int64) error
}

// Tagged is implemented by sources whose container carries metadata.
type Tagged interface {
	Tags() Tags
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (".wav", ".ogg", ...) to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds a decoder to an extension. The extension must include
// the leading dot; lookups are case-insensitive.
func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(ext)]
	return d, ok
}

// Lookup resolves a decoder from a file path's extension.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	return r.Get(filepath.Ext(path))
}
