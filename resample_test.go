// SPDX-License-Identifier: MIT

package auris

import (
	"errors"
	"testing"
)

func TestDecodeMono16(t *testing.T) {
	// stereo ramp: left 2000, right 4000, folds to 3000
	samples := make([]int16, 400*2)
	for i := 0; i < len(samples); i += 2 {
		samples[i] = 2000
		samples[i+1] = 4000
	}
	path := writeTempWAV(t, 8000, 2, samples)

	out, err := DecodeMono16(path, 4000)
	if err != nil {
		t.Fatalf("DecodeMono16: %v", err)
	}

	if len(out) < 190 || len(out) > 210 {
		t.Fatalf("got %d samples, want about 200", len(out))
	}

	// steady-state value survives the fold and resample
	mid := out[len(out)/2]
	if mid < 2990 || mid > 3010 {
		t.Fatalf("sample = %d, want about 3000", mid)
	}
}

func TestDecodeMono16SameRate(t *testing.T) {
	path := writeTempWAV(t, 8000, 1, constSamples(500, 1000))

	out, err := DecodeMono16(path, 8000)
	if err != nil {
		t.Fatalf("DecodeMono16: %v", err)
	}

	if len(out) != 500 {
		t.Fatalf("got %d samples, want 500 (no resampling)", len(out))
	}
	if out[250] < 998 || out[250] > 1002 {
		t.Fatalf("sample = %d, want about 1000", out[250])
	}
}

func TestDecodeMono16UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := DecodeMono16("voice.xyz", 8000)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("DecodeMono16 = %v, want ErrUnknownFormat", err)
	}
}

func TestDecodeMono16MissingFile(t *testing.T) {
	t.Parallel()

	_, err := DecodeMono16(t.TempDir()+"/missing.wav", 8000)
	if err == nil {
		t.Fatal("DecodeMono16 succeeded on a missing file")
	}
}
