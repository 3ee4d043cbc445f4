// SPDX-License-Identifier: MIT

// Package aiff provides AIFF audio file decoding.
//
// Decoding is built on github.com/go-audio/aiff and supports PCM
// 16-bit files, mono or stereo, at any sample rate.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32
// values in the range [-1.0, 1.0]. The total frame count from the COMM
// chunk is exposed through the audio.Sized capability.
package aiff
