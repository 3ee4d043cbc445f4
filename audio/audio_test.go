// SPDX-License-Identifier: MIT

package audio

import (
	"errors"
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(".wav", decoder)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get(".flac")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent extension")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(".WAV", decoder)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() did not normalize extension case")
	}
	if got != decoder {
		t.Error("Registry.Get() returned wrong decoder for normalized extension")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register(".wav", wavDecoder)
	registry.Register(".mp3", mp3Decoder)
	registry.Register(".ogg", oggDecoder)

	tests := []struct {
		path   string
		want   Decoder
		wantOK bool
	}{
		{"shot.wav", wavDecoder, true},
		{"/music/theme.mp3", mp3Decoder, true},
		{"assets/loop.OGG", oggDecoder, true},
		{"voice.flac", nil, false},
		{"noextension", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := registry.Lookup(tt.path)
			if ok != tt.wantOK {
				t.Errorf("Registry.Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Lookup(%q) returned wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register(".wav", decoder1)
	registry.Register(".wav", decoder2)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			registry.Register(".fmt", decoder)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		go func(id int) {
			_, _ = registry.Get(".fmt")
			done <- true
		}(i)
	}

	for i := 0; i < 20; i++ {
		<-done
	}

	got, ok := registry.Get(".fmt")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.codecs == nil {
		t.Error("NewRegistry() did not initialize codecs map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

func TestTags_Empty(t *testing.T) {
	t.Parallel()

	var tags Tags
	if !tags.Empty() {
		t.Error("zero Tags should report Empty() = true")
	}

	tags.Title = "shot"
	if tags.Empty() {
		t.Error("Tags with a title should report Empty() = false")
	}
}

// BenchmarkRegistry_Lookup benchmarks path-based decoder resolution
func BenchmarkRegistry_Lookup(b *testing.B) {
	registry := NewRegistry()
	decoder := &mockDecoder{}
	registry.Register(".wav", decoder)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		registry.Lookup("res/shot.wav")
	}
}
