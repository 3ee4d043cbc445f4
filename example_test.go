// SPDX-License-Identifier: MIT

package auris_test

import (
	"fmt"
	"log"
	"time"

	"github.com/aurisaudio/auris"
)

func Example() {
	snd, err := auris.NewSound("door.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer snd.Close()

	if err := snd.Play(); err != nil {
		log.Fatal(err)
	}

	for snd.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
}

func ExampleNewMusic() {
	music, err := auris.NewMusic("album/track.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer music.Close()

	music.SetLooping(true)
	music.SetVolume(0.8)

	if err := music.Play(); err != nil {
		log.Fatal(err)
	}

	fmt.Println(music.Tags().Title)
	time.Sleep(30 * time.Second)
}

func ExampleSound_spatial() {
	engine, err := auris.NewSound("engine.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	// a car passing from left to right, 5m ahead
	engine.SetPosition(auris.Vector{X: -20, Y: 0, Z: -5})
	engine.SetVelocity(auris.Vector{X: 10, Y: 0, Z: 0})
	engine.SetLooping(true)
	engine.Connect(auris.NewReverbEffectFromPreset(auris.PresetPlain))

	if err := engine.Play(); err != nil {
		log.Fatal(err)
	}

	for x := float32(-20); x <= 20; x++ {
		engine.SetPosition(auris.Vector{X: x, Y: 0, Z: -5})
		time.Sleep(100 * time.Millisecond)
	}
}

func ExampleRecorder() {
	ctx, err := auris.InitCapture()
	if err != nil {
		log.Fatal(err)
	}

	rec, err := ctx.NewRecorder(auris.RecorderConfig{})
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	rec.Start()
	time.Sleep(3 * time.Second)
	rec.Stop()

	if err := rec.SaveToFile("take.wav", 0); err != nil {
		log.Fatal(err)
	}
}

func ExampleReverbPreset_String() {
	fmt.Println(auris.PresetConcertHall)
	fmt.Println(auris.PresetUnderwater)
	// Output:
	// concert hall
	// underwater
}

func ExampleNewSoundData() {
	// one second of silence
	samples := make([]float32, 44100)

	data, err := auris.NewSoundData(samples, 44100, 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(data.Duration())
	// Output:
	// 1s
}
