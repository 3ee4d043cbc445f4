// SPDX-License-Identifier: MIT

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and supports PCM 16-bit
// files, mono or stereo, at any sample rate. LIST-INFO metadata (title,
// artist, and so on) is exposed through the audio.Tagged capability.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32
// values in the range [-1.0, 1.0]. The returned source also reports its
// total length in frames through the audio.Sized capability.
//
// # Writing WAV Files
//
// Encode writes interleaved 16-bit PCM through a seekable writer:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, 44100, 2, samples)
//
// WriteWAV16 is a lighter mono-only variant that works with any
// io.Writer, which makes it useful for building test fixtures in
// memory:
//
//	var buf bytes.Buffer
//	err := wav.WriteWAV16(&buf, 8000, samples)
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrUnsupportedWavChunks: the PCM data chunk could not be located
package wav
