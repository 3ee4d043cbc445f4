// SPDX-License-Identifier: MIT

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which outputs
// 16-bit PCM at the file's native sample rate, always as 2 channels.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32
// values in the range [-1.0, 1.0].
//
// # Seeking and Length
//
// When the input reader is seekable the returned source also supports
// the audio.Sized and audio.Seeker capabilities: the total frame count
// is known up front and playback can be repositioned to any frame. On
// a plain stream both degrade gracefully (length reports 0 and seeking
// returns an error).
package mp3
