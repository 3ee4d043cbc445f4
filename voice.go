// SPDX-License-Identifier: MIT

package auris

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/aurisaudio/auris/audio"
	"github.com/aurisaudio/auris/internal/device"
	"github.com/aurisaudio/auris/internal/dsp"
	"github.com/aurisaudio/auris/utils"
)

// playbackStream is what a voice renders from: a sample source that
// can restart from the beginning for looping and replay.
type playbackStream interface {
	audio.Source
	Rewind() error
}

// devicePlayer abstracts *oto.Player so the render path is testable
// without audio hardware.
type devicePlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	BufferedSize() int
	Close() error
}

const (
	bytesPerDeviceFrame = 4 // stereo int16

	// mono material is centered with constant power
	centerGain = 0.70710678

	minPitch = 0.01
	maxPitch = 100.0
)

// voice drives one playback instance. It implements io.Reader; the
// device player pulls rendered stereo int16 frames from it on a
// backend goroutine, so every field is guarded by mu.
//
// Lock discipline: player methods take the player's own lock around
// calls into Read, so voice methods must never invoke the player while
// holding mu. Snapshot the player under mu, release, then call it.
type voice struct {
	mu sync.Mutex

	stream  playbackStream
	srcRate int
	srcCh   int

	devRate   int
	newPlayer func(io.Reader) devicePlayer
	player    devicePlayer

	state   State
	closed  bool
	looping bool

	volume float64
	minVol float64
	maxVol float64
	pitch  float64

	relative      bool
	position      Vector
	velocity      Vector
	direction     Vector
	maxDistance   float64
	refDistance   float64
	rolloff       float64
	airAbsorption float64
	directChannel bool
	spatialSet    bool

	effect *ReverbEffect
	tank   *dsp.Reverb
	filter *dsp.LowPass

	// render state, rebuilt by prepareLocked
	fold     *audio.MonoMixer
	renderCh int
	pending  []float32
	pendPos  int
	pendLen  int
	window   [2][4]float32
	winPos   float64
	primed   bool
	zeroFed  int
	done     bool

	cursor     int64   // frame where the next Play starts
	startFrame int64   // frame where the current segment started
	consumed   int64   // source frames pulled in the current segment
	ratio      float64 // source frames per device frame, last block
}

func newVoice(stream playbackStream) (*voice, error) {
	ch := stream.Channels()
	if ch < 1 || ch > 2 {
		return nil, ErrInvalidChannels
	}
	if stream.SampleRate() <= 0 {
		return nil, ErrNoSamples
	}

	return &voice{
		stream:      stream,
		srcRate:     stream.SampleRate(),
		srcCh:       ch,
		volume:      1,
		minVol:      0,
		maxVol:      1,
		pitch:       1,
		refDistance: 1,
		maxDistance: math.MaxFloat64,
		rolloff:     1,
		filter:      dsp.NewLowPass(0),
	}, nil
}

// bind wires the voice to a device rate and player factory. Play does
// this against the real output device; tests inject fakes.
func (v *voice) bind(devRate int, newPlayer func(io.Reader) devicePlayer) {
	v.mu.Lock()
	v.devRate = devRate
	v.newPlayer = newPlayer
	v.mu.Unlock()
}

func (v *voice) Play() error {
	v.mu.Lock()

	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}

	switch v.state {
	case Playing:
		v.mu.Unlock()
		return nil

	case Paused:
		p := v.player
		v.state = Playing
		v.mu.Unlock()
		if p != nil {
			p.Play()
		}
		return nil
	}

	if v.newPlayer == nil {
		v.mu.Unlock()

		ctx, rate, err := device.Playback()
		if err != nil {
			return fmt.Errorf("playback device: %w", err)
		}

		v.mu.Lock()
		if v.closed {
			v.mu.Unlock()
			return ErrClosed
		}
		if v.newPlayer == nil {
			v.devRate = rate
			v.newPlayer = func(r io.Reader) devicePlayer { return ctx.NewPlayer(r) }
		}
	}

	if err := v.prepareLocked(); err != nil {
		v.mu.Unlock()
		return err
	}

	old := v.player
	v.player = v.newPlayer(v)
	v.state = Playing
	p := v.player
	v.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	p.Play()

	return nil
}

func (v *voice) Pause() error {
	v.mu.Lock()

	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.state != Playing {
		v.mu.Unlock()
		return nil
	}

	v.state = Paused
	p := v.player
	v.mu.Unlock()

	if p != nil {
		p.Pause()
	}

	return nil
}

func (v *voice) Stop() error {
	v.mu.Lock()

	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}

	p := v.player
	v.player = nil
	v.state = Stopped
	v.cursor = 0
	v.mu.Unlock()

	if p != nil {
		_ = p.Close()
	}

	return nil
}

func (v *voice) Close() error {
	v.mu.Lock()

	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	v.state = Stopped

	p := v.player
	v.player = nil
	stream := v.stream
	v.mu.Unlock()

	if p != nil {
		_ = p.Close()
	}

	return stream.Close()
}

func (v *voice) Connect(effect *ReverbEffect) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}

	v.effect = effect

	// rebuild the tank in place when already bound to a device
	if effect == nil {
		v.tank = nil
	} else if v.devRate > 0 {
		v.tank = dsp.NewReverb(v.devRate, effect.tankParams())
	}

	return nil
}

func (v *voice) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *voice) IsPlaying() bool {
	return v.State() == Playing
}

// prepareLocked positions the stream at the cursor and resets all
// render state for a fresh segment.
func (v *voice) prepareLocked() error {
	if err := v.seekStreamLocked(v.cursor); err != nil {
		return err
	}

	v.startFrame = v.cursor
	v.consumed = 0

	if v.spatialActiveLocked() && v.srcCh == 2 {
		v.fold = audio.NewMonoMixer(v.stream)
		v.renderCh = 1
	} else {
		v.fold = nil
		v.renderCh = v.srcCh
	}

	if v.pending == nil {
		v.pending = make([]float32, 4096)
	}
	v.pendPos, v.pendLen = 0, 0
	v.window = [2][4]float32{}
	v.winPos = 0
	v.primed = false
	v.zeroFed = 0
	v.done = false

	v.filter = dsp.NewLowPass(0)
	if v.effect != nil {
		v.tank = dsp.NewReverb(v.devRate, v.effect.tankParams())
	} else {
		v.tank = nil
	}

	return nil
}

func (v *voice) spatialActiveLocked() bool {
	return v.spatialSet && !v.directChannel
}

func (v *voice) readerLocked() audio.Source {
	if v.fold != nil {
		return v.fold
	}
	return v.stream
}

func (v *voice) seekStreamLocked(frame int64) error {
	if frame <= 0 {
		return v.stream.Rewind()
	}

	if s, ok := v.stream.(audio.Seeker); ok {
		return s.SeekFrame(frame)
	}

	// no random access: restart and discard up to the target
	if err := v.stream.Rewind(); err != nil {
		return err
	}

	scratch := make([]float32, 4096-4096%v.srcCh)
	remaining := frame * int64(v.srcCh)
	for remaining > 0 {
		want := int64(len(scratch))
		if want > remaining {
			want = remaining
		}

		n, err := v.stream.ReadSamples(scratch[:want])
		remaining -= int64(n)

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// nextFrameLocked pulls one source frame, handling refills, looping
// and the zero-padding tail that flushes the interpolation window.
func (v *voice) nextFrameLocked() ([2]float32, bool) {
	for v.pendPos >= v.pendLen {
		n, err := v.readerLocked().ReadSamples(v.pending)
		if n > 0 {
			v.pendPos = 0
			v.pendLen = n - n%v.renderCh
			break
		}

		if err == nil || err == io.EOF {
			if v.looping {
				if rerr := v.stream.Rewind(); rerr != nil {
					return [2]float32{}, false
				}
				v.startFrame = 0
				v.consumed = 0
				continue
			}

			if v.zeroFed < 3 {
				v.zeroFed++
				return [2]float32{}, true
			}
			return [2]float32{}, false
		}

		return [2]float32{}, false
	}

	var f [2]float32
	for c := range v.renderCh {
		f[c] = v.pending[v.pendPos+c]
	}
	v.pendPos += v.renderCh
	v.consumed++

	return f, true
}

func (v *voice) shiftWindowLocked() bool {
	f, ok := v.nextFrameLocked()
	if !ok {
		return false
	}

	for c := range v.window {
		v.window[c][0] = v.window[c][1]
		v.window[c][1] = v.window[c][2]
		v.window[c][2] = v.window[c][3]
		v.window[c][3] = f[c]
	}

	return true
}

func (v *voice) primeWindowLocked() bool {
	for range 3 {
		if !v.shiftWindowLocked() {
			return false
		}
	}
	v.primed = true
	return true
}

type blockParams struct {
	gain    float64
	panL    float64
	panR    float64
	doppler float64
	spatial bool
}

func (v *voice) blockParamsLocked(lst listenerSnapshot) blockParams {
	if !v.spatialActiveLocked() || v.renderCh > 1 {
		gain := dsp.Clamp(v.volume, v.minVol, v.maxVol) * lst.vol
		return blockParams{gain: gain, panL: 1, panR: 1, doppler: 1}
	}

	rel := vec3(v.position)
	listenerVel := vec3(lst.vel)
	at, up := vec3(lst.at), vec3(lst.up)
	if v.relative {
		// source coordinates are already in listener space
		at, up = dsp.Vec3{0, 0, -1}, dsp.Vec3{0, 1, 0}
		listenerVel = dsp.Vec3{}
	} else {
		rel = rel.Sub(vec3(lst.pos))
	}

	dist := rel.Length()

	gain := v.volume * dsp.DistanceGain(dist, v.refDistance, v.maxDistance, v.rolloff)
	gain = dsp.Clamp(gain, v.minVol, v.maxVol) * lst.vol

	panL, panR := dsp.ConstantPowerGains(dsp.AzimuthPan(rel, at, up))

	doppler := dsp.Doppler(dsp.Vec3{}.Sub(rel), vec3(v.velocity), listenerVel, 1.0)

	v.filter.SetAlpha(dsp.AirAbsorptionAlpha(v.airAbsorption, dist))

	return blockParams{gain: gain, panL: panL, panR: panR, doppler: doppler, spatial: true}
}

// Read renders stereo int16 frames for the device player.
func (v *voice) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || v.done || v.state == Stopped {
		return 0, io.EOF
	}

	if v.state != Playing {
		// the player should not pull while paused; hand it silence
		clear(p)
		return len(p), nil
	}

	frames := len(p) / bytesPerDeviceFrame
	if frames == 0 {
		return 0, nil
	}

	params := v.blockParamsLocked(snapshotListener())

	ratio := float64(v.srcRate) / float64(v.devRate) * v.pitch * params.doppler
	ratio = dsp.Clamp(ratio, minPitch, maxPitch)
	v.ratio = ratio

	if !v.primed && !v.primeWindowLocked() {
		v.finishLocked()
		return 0, io.EOF
	}

	written := 0
	for i := 0; i < frames; i++ {
		for v.winPos >= 1 {
			if !v.shiftWindowLocked() {
				v.done = true
				break
			}
			v.winPos--
		}
		if v.done {
			break
		}

		var left, right float32
		if params.spatial {
			s := utils.CubicInterpolate(
				v.window[0][0], v.window[0][1], v.window[0][2], v.window[0][3],
				float32(v.winPos),
			)
			s = v.filter.Process(s)

			out := s * float32(params.gain)
			if v.tank != nil {
				out += v.tank.Process(s) * float32(params.gain)
			}

			left = out * float32(params.panL)
			right = out * float32(params.panR)
		} else {
			l := utils.CubicInterpolate(
				v.window[0][0], v.window[0][1], v.window[0][2], v.window[0][3],
				float32(v.winPos),
			)

			if v.renderCh == 2 {
				r := utils.CubicInterpolate(
					v.window[1][0], v.window[1][1], v.window[1][2], v.window[1][3],
					float32(v.winPos),
				)
				left = l * float32(params.gain)
				right = r * float32(params.gain)
			} else {
				c := l * float32(params.gain) * centerGain
				left, right = c, c
			}

			if v.tank != nil {
				wet := v.tank.Process((left+right)*0.5) * centerGain
				left += wet
				right += wet
			}
		}

		off := i * bytesPerDeviceFrame
		binary.LittleEndian.PutUint16(p[off:off+2], uint16(utils.Float32ToInt16(left)))
		binary.LittleEndian.PutUint16(p[off+2:off+4], uint16(utils.Float32ToInt16(right)))
		written++

		v.winPos += ratio
	}

	if v.done {
		v.finishLocked()
		if written == 0 {
			return 0, io.EOF
		}
		return written * bytesPerDeviceFrame, io.EOF
	}

	return written * bytesPerDeviceFrame, nil
}

// finishLocked marks natural end of playback.
func (v *voice) finishLocked() {
	v.done = true
	v.state = Stopped
	v.cursor = 0
}

func (v *voice) SetVolume(volume float64) error {
	return v.setFloat(&v.volume, volume, 0, math.MaxFloat64, false)
}

func (v *voice) Volume() float64 { return v.getFloat(&v.volume) }

func (v *voice) SetMinVolume(volume float64) error {
	return v.setFloat(&v.minVol, volume, 0, math.MaxFloat64, false)
}

func (v *voice) MinVolume() float64 { return v.getFloat(&v.minVol) }

func (v *voice) SetMaxVolume(volume float64) error {
	return v.setFloat(&v.maxVol, volume, 0, math.MaxFloat64, false)
}

func (v *voice) MaxVolume() float64 { return v.getFloat(&v.maxVol) }

func (v *voice) SetLooping(looping bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	v.looping = looping
	return nil
}

func (v *voice) IsLooping() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.looping
}

func (v *voice) SetPitch(pitch float64) error {
	return v.setFloat(&v.pitch, pitch, minPitch, maxPitch, false)
}

func (v *voice) Pitch() float64 { return v.getFloat(&v.pitch) }

func (v *voice) SetRelative(relative bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	v.relative = relative
	v.spatialSet = true
	return nil
}

func (v *voice) IsRelative() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.relative
}

func (v *voice) SetPosition(pos Vector) error {
	return v.setVector(&v.position, pos)
}

func (v *voice) Position() Vector { return v.getVector(&v.position) }

func (v *voice) SetVelocity(vel Vector) error {
	return v.setVector(&v.velocity, vel)
}

func (v *voice) Velocity() Vector { return v.getVector(&v.velocity) }

func (v *voice) SetDirection(dir Vector) error {
	return v.setVector(&v.direction, dir)
}

func (v *voice) Direction() Vector { return v.getVector(&v.direction) }

func (v *voice) SetMaxDistance(distance float64) error {
	return v.setFloat(&v.maxDistance, distance, 0, math.MaxFloat64, true)
}

func (v *voice) MaxDistance() float64 { return v.getFloat(&v.maxDistance) }

func (v *voice) SetReferenceDistance(distance float64) error {
	return v.setFloat(&v.refDistance, distance, 0, math.MaxFloat64, true)
}

func (v *voice) ReferenceDistance() float64 { return v.getFloat(&v.refDistance) }

func (v *voice) SetAttenuation(factor float64) error {
	return v.setFloat(&v.rolloff, factor, 0, math.MaxFloat64, true)
}

func (v *voice) Attenuation() float64 { return v.getFloat(&v.rolloff) }

func (v *voice) SetAirAbsorptionFactor(factor float64) error {
	return v.setFloat(&v.airAbsorption, factor, 0, 10, true)
}

func (v *voice) AirAbsorptionFactor() float64 { return v.getFloat(&v.airAbsorption) }

func (v *voice) SetDirectChannel(direct bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	v.directChannel = direct
	return nil
}

func (v *voice) DirectChannel() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.directChannel
}

func (v *voice) SetOffset(offset time.Duration) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}

	frame := durationToFrames(offset, v.srcRate)
	if frame < 0 {
		frame = 0
	}
	if sized, ok := v.stream.(audio.Sized); ok {
		if total := sized.Frames(); total > 0 && frame > total {
			frame = total
		}
	}

	v.cursor = frame

	if v.state != Playing && v.state != Paused {
		return nil
	}

	// reposition the live stream; frames already buffered in the
	// device drain before the jump is heard
	if err := v.seekStreamLocked(frame); err != nil {
		return err
	}

	v.startFrame = frame
	v.consumed = 0
	v.pendPos, v.pendLen = 0, 0
	v.window = [2][4]float32{}
	v.winPos = 0
	v.primed = false
	v.zeroFed = 0
	v.done = false

	return nil
}

func (v *voice) Offset() time.Duration {
	v.mu.Lock()
	state := v.state
	player := v.player
	pos := v.startFrame + v.consumed
	ratio := v.ratio
	rate := v.srcRate
	cursor := v.cursor
	v.mu.Unlock()

	if state == Initial || state == Stopped {
		return framesToDuration(cursor, rate)
	}

	// subtract what the device has pulled but not yet played
	if player != nil && ratio > 0 {
		buffered := int64(player.BufferedSize() / bytesPerDeviceFrame)
		pos -= int64(float64(buffered) * ratio)
	}
	if pos < 0 {
		pos = 0
	}

	return framesToDuration(pos, rate)
}

func (v *voice) Duration() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sized, ok := v.stream.(audio.Sized); ok {
		if frames := sized.Frames(); frames > 0 {
			return framesToDuration(frames, v.srcRate)
		}
	}

	return 0
}

func (v *voice) setFloat(field *float64, value, lo, hi float64, spatial bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}

	*field = dsp.Clamp(value, lo, hi)
	if spatial {
		v.spatialSet = true
	}
	return nil
}

func (v *voice) getFloat(field *float64) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return *field
}

func (v *voice) setVector(field *Vector, value Vector) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}

	*field = value
	v.spatialSet = true
	return nil
}

func (v *voice) getVector(field *Vector) Vector {
	v.mu.Lock()
	defer v.mu.Unlock()
	return *field
}

func vec3(v Vector) dsp.Vec3 {
	return dsp.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
