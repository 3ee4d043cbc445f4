// SPDX-License-Identifier: MIT

package dsp

import "math"

// Classic Schroeder delay times, in seconds. The comb filters run in
// parallel and feed two series allpass diffusers.
var (
	combDelays    = [4]float64{0.0297, 0.0371, 0.0411, 0.0437}
	allpassDelays = [2]float64{0.005, 0.0017}
)

const allpassFeedback = 0.5

// ReverbParams describes a reverb tank. DecayTime is the RT60 in
// seconds, Damping darkens the tail (0 leaves it bright), PreDelay
// postpones the first reflection and Gain scales the wet output.
type ReverbParams struct {
	DecayTime float64
	Damping   float64
	PreDelay  float64
	Gain      float64
}

type combFilter struct {
	buf      []float64
	pos      int
	feedback float64

	// one-pole damping in the feedback path
	damp      float64
	dampState float64
}

func newCombFilter(size int, feedback, damp float64) *combFilter {
	return &combFilter{
		buf:      make([]float64, size),
		feedback: feedback,
		damp:     damp,
	}
}

func (c *combFilter) process(x float64) float64 {
	out := c.buf[c.pos]

	c.dampState = out*(1-c.damp) + c.dampState*c.damp
	c.buf[c.pos] = x + c.dampState*c.feedback

	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}

	return out
}

type allpassFilter struct {
	buf []float64
	pos int
}

func newAllpassFilter(size int) *allpassFilter {
	return &allpassFilter{buf: make([]float64, size)}
}

func (a *allpassFilter) process(x float64) float64 {
	delayed := a.buf[a.pos]
	out := delayed - x
	a.buf[a.pos] = x + delayed*allpassFeedback

	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}

	return out
}

// Reverb is a Schroeder reverberator: four parallel feedback combs
// followed by two allpass diffusers, with an optional pre-delay line.
type Reverb struct {
	combs    [4]*combFilter
	allpass  [2]*allpassFilter
	preDelay []float64
	prePos   int
	gain     float64
}

// NewReverb builds a reverb tank for the given device rate. Feedback
// per comb is chosen so the tail decays 60 dB over p.DecayTime.
func NewReverb(sampleRate int, p ReverbParams) *Reverb {
	if sampleRate <= 0 {
		sampleRate = 44100
	}

	decay := p.DecayTime
	if decay <= 0 {
		decay = 1.0
	}

	damp := Clamp(p.Damping, 0, 0.9999)

	r := &Reverb{gain: p.Gain}

	for i, d := range combDelays {
		size := max(int(d*float64(sampleRate)), 1)
		feedback := math.Pow(0.001, d/decay)
		r.combs[i] = newCombFilter(size, feedback, damp)
	}

	for i, d := range allpassDelays {
		size := max(int(d*float64(sampleRate)), 1)
		r.allpass[i] = newAllpassFilter(size)
	}

	if p.PreDelay > 0 {
		size := max(int(p.PreDelay*float64(sampleRate)), 1)
		r.preDelay = make([]float64, size)
	}

	return r
}

// Process pushes one dry sample through the tank and returns the wet
// sample. The dry path is not mixed in here; callers blend the two.
func (r *Reverb) Process(x float32) float32 {
	in := float64(x)

	if r.preDelay != nil {
		delayed := r.preDelay[r.prePos]
		r.preDelay[r.prePos] = in
		r.prePos++
		if r.prePos >= len(r.preDelay) {
			r.prePos = 0
		}
		in = delayed
	}

	var sum float64
	for _, c := range r.combs {
		sum += c.process(in)
	}
	sum *= 0.25

	for _, a := range r.allpass {
		sum = a.process(sum)
	}

	return float32(sum * r.gain)
}
