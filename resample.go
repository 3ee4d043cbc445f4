// SPDX-License-Identifier: MIT

package auris

import (
	"fmt"
	"os"

	"github.com/aurisaudio/auris/audio"
	"github.com/aurisaudio/auris/utils"
)

// DecodeMono16 decodes the file at path, folds it to mono and
// resamples to rate, returning 16-bit samples. Handy for feeding
// speech or telephony pipelines that want a fixed narrow format.
func DecodeMono16(path string, rate int) ([]int16, error) {
	dec, ok := DefaultRegistry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer src.Close()

	var pipe audio.Source = src
	if pipe.Channels() > 1 {
		pipe = audio.NewMonoMixer(pipe)
	}
	if pipe.SampleRate() != rate {
		pipe = audio.NewResampler(pipe, rate)
	}

	samples, err := readAllSamples(pipe)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoSamples)
	}

	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float32ToInt16(s)
	}

	return out, nil
}
