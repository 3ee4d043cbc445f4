// SPDX-License-Identifier: MIT

package dsp

import "math"

// hfAbsorptionGain is the high-frequency gain applied per meter at an
// absorption factor of 1.0, matching the EFX air absorption default.
const hfAbsorptionGain = 0.994

// LowPass is a one-pole low-pass filter. A coefficient of 0 passes the
// signal through untouched; values approaching 1 darken it.
type LowPass struct {
	alpha float64
	state float64
}

func NewLowPass(alpha float64) *LowPass {
	return &LowPass{alpha: Clamp(alpha, 0, 0.9999)}
}

// SetAlpha updates the smoothing coefficient without resetting filter
// state, so it can track a moving source between blocks.
func (f *LowPass) SetAlpha(alpha float64) {
	f.alpha = Clamp(alpha, 0, 0.9999)
}

func (f *LowPass) Alpha() float64 { return f.alpha }

// Reset clears the filter memory.
func (f *LowPass) Reset() {
	f.state = 0
}

func (f *LowPass) Process(x float32) float32 {
	f.state = float64(x)*(1-f.alpha) + f.state*f.alpha
	return float32(f.state)
}

// AirAbsorptionAlpha derives a low-pass coefficient from an absorption
// factor and the travel distance in meters. Factor 0 disables
// filtering; larger factors and longer distances darken the sound.
func AirAbsorptionAlpha(factor, distance float64) float64 {
	if factor <= 0 || distance <= 0 {
		return 0
	}

	// Cumulative high-frequency gain over the travel distance
	gainHF := math.Pow(hfAbsorptionGain, factor*distance)

	return Clamp(1-gainHF, 0, 0.9999)
}
