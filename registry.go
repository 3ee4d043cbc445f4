// SPDX-License-Identifier: MIT

package auris

import (
	"github.com/aurisaudio/auris/audio"
	"github.com/aurisaudio/auris/formats/aiff"
	"github.com/aurisaudio/auris/formats/mp3"
	"github.com/aurisaudio/auris/formats/vorbis"
	"github.com/aurisaudio/auris/formats/wav"
)

// DefaultRegistry maps file extensions to decoders. All bundled
// formats are registered; applications can add their own with
// DefaultRegistry.Register.
var DefaultRegistry = audio.NewRegistry()

func init() {
	DefaultRegistry.Register(".wav", wav.Decoder{})
	DefaultRegistry.Register(".mp3", mp3.Decoder{})
	DefaultRegistry.Register(".ogg", vorbis.Decoder{})
	DefaultRegistry.Register(".oga", vorbis.Decoder{})
	DefaultRegistry.Register(".aiff", aiff.Decoder{})
	DefaultRegistry.Register(".aif", aiff.Decoder{})
}
