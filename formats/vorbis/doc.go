// SPDX-License-Identifier: MIT

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, a pure Go
// implementation. Vorbis decodes straight to float32, so samples pass
// through without conversion.
//
// # Decoding Ogg Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Seeking, Length and Tags
//
// On a seekable input the returned source supports the audio.Sized and
// audio.Seeker capabilities. Vorbis comments (TITLE, ARTIST, ALBUM and
// friends) are exposed through audio.Tagged.
package vorbis
