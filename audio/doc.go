// SPDX-License-Identifier: MIT

// Package audio provides the low-level streaming primitives the
// playback layer is built on.
//
// # Source Interface
//
// The Source interface is the foundation of all audio plumbing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Format decoders and stream processors implement Source, so they can
// be chained into pipelines. Samples are interleaved float32 in the
// range [-1.0, 1.0].
//
// # Optional Capabilities
//
// Sources advertise extra abilities through narrow interfaces that
// callers discover with a type assertion:
//
//   - Sized: the total frame count is known (used for durations)
//   - Seeker: sample-accurate seeking (used for playback offsets)
//   - Tagged: the container carries metadata (title, artist, ...)
//
// A source that cannot provide one of these simply does not implement
// it; callers fall back to rewind-and-skip or report zero durations.
//
// # Stream Processors
//
// Resampler converts the sample rate using cubic interpolation:
//
//	r := audio.NewResampler(src, 44100)
//
// MonoMixer folds multi-channel audio down to a single channel, which
// is what the spatializer positions:
//
//	mono := audio.NewMonoMixer(src)
//
// # Decoder Registry
//
// A Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register(".wav", wav.Decoder{})
//	dec, ok := reg.Lookup("path/to/sound.wav")
//
// The root package maintains a default registry pre-populated with the
// wav, mp3, vorbis and aiff decoders.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is exhausted:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples from buf
//	}
package audio
