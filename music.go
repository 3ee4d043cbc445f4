// SPDX-License-Identifier: MIT

package auris

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aurisaudio/auris/audio"
)

// Music streams a file from disk while it plays, decoding on the fly.
// Use it for long material where decoding everything up front, the way
// Sound does, would waste memory.
type Music struct {
	*voice
	stream *fileStream
}

// NewMusic opens the file at path for streamed playback. The decoder
// is picked from DefaultRegistry by file extension. The file stays
// open until Close.
func NewMusic(path string) (*Music, error) {
	dec, ok := DefaultRegistry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	fs := &fileStream{file: f, dec: dec, src: src}

	v, err := newVoice(fs)
	if err != nil {
		fs.Close()
		return nil, err
	}

	return &Music{voice: v, stream: fs}, nil
}

// Tags returns the metadata read from the file, if any.
func (m *Music) Tags() audio.Tags {
	return m.stream.Tags()
}

// fileStream adapts a decoder source into a rewindable playback
// stream. Rewinding prefers the source's own seeking; failing that it
// rewinds the file and decodes again from the top.
type fileStream struct {
	mu   sync.Mutex
	file *os.File
	dec  audio.Decoder
	src  audio.Source
}

func (fs *fileStream) SampleRate() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.src.SampleRate()
}

func (fs *fileStream) Channels() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.src.Channels()
}

func (fs *fileStream) BufSize() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.src.BufSize()
}

func (fs *fileStream) ReadSamples(dst []float32) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.src.ReadSamples(dst)
}

func (fs *fileStream) Frames() int64 {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if sized, ok := fs.src.(audio.Sized); ok {
		return sized.Frames()
	}
	return 0
}

func (fs *fileStream) Tags() audio.Tags {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if tagged, ok := fs.src.(audio.Tagged); ok {
		return tagged.Tags()
	}
	return audio.Tags{}
}

func (fs *fileStream) Rewind() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.seekLocked(0)
}

func (fs *fileStream) SeekFrame(frame int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.seekLocked(frame)
}

func (fs *fileStream) seekLocked(frame int64) error {
	if s, ok := fs.src.(audio.Seeker); ok {
		return s.SeekFrame(frame)
	}

	// no random access: decode again from the start of the file
	if err := fs.redecodeLocked(); err != nil {
		return err
	}
	if frame == 0 {
		return nil
	}

	return fs.discardLocked(frame)
}

func (fs *fileStream) redecodeLocked() error {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding %q: %w", fs.file.Name(), err)
	}

	src, err := fs.dec.Decode(fs.file)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", fs.file.Name(), err)
	}

	fs.src.Close()
	fs.src = src

	return nil
}

func (fs *fileStream) discardLocked(frames int64) error {
	channels := int64(fs.src.Channels())
	scratch := make([]float32, 4096-4096%channels)

	remaining := frames * channels
	for remaining > 0 {
		want := int64(len(scratch))
		if want > remaining {
			want = remaining
		}

		n, err := fs.src.ReadSamples(scratch[:want])
		remaining -= int64(n)

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (fs *fileStream) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	srcErr := fs.src.Close()
	fileErr := fs.file.Close()

	if srcErr != nil {
		return srcErr
	}
	return fileErr
}
