// SPDX-License-Identifier: MIT

package auris

import (
	"github.com/aurisaudio/auris/audio"
)

// Sound plays a fully decoded in-memory buffer. Best for short
// samples that fire often; the decoded data can be shared between
// many Sounds through SoundData.
type Sound struct {
	*voice
	data *SoundData
}

// NewSound loads and decodes the file at path into memory and wraps
// it in a playable Sound.
func NewSound(path string) (*Sound, error) {
	data, err := LoadSoundData(path)
	if err != nil {
		return nil, err
	}
	return NewSoundFrom(data)
}

// NewSoundFrom creates a Sound over an existing buffer. The buffer is
// shared, not copied; any number of Sounds can play it concurrently.
func NewSoundFrom(data *SoundData) (*Sound, error) {
	v, err := newVoice(data.source())
	if err != nil {
		return nil, err
	}

	return &Sound{voice: v, data: data}, nil
}

// Data returns the shared sample buffer.
func (s *Sound) Data() *SoundData {
	return s.data
}

// Tags returns the metadata read from the source file, if any.
func (s *Sound) Tags() audio.Tags {
	return s.data.Tags()
}
