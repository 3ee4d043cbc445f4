// SPDX-License-Identifier: MIT

package dsp

import "math"

// SpeedOfSound is the propagation speed used for doppler shift
// calculations, in meters per second.
const SpeedOfSound = 343.3

// Vec3 is a cartesian vector in listener space.
type Vec3 [3]float64

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns a unit vector, or the zero vector when v has no
// length.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Clamp limits x to the [lo, hi] range.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DistanceGain implements the inverse distance clamped attenuation
// model: the distance is clamped to [refDist, maxDist] and the gain
// rolls off as refDist / (refDist + rolloff*(distance - refDist)).
func DistanceGain(distance, refDist, maxDist, rolloff float64) float64 {
	if refDist <= 0 {
		return 1.0
	}
	if maxDist < refDist {
		maxDist = refDist
	}

	distance = Clamp(distance, refDist, maxDist)

	denom := refDist + rolloff*(distance-refDist)
	if denom <= 0 {
		return 1.0
	}

	return refDist / denom
}

// AzimuthPan projects the direction to a sound onto the listener's
// right vector, yielding a pan position in [-1, 1]. Sounds directly
// ahead (or with no offset) pan to center.
func AzimuthPan(toSource, at, up Vec3) float64 {
	dir := toSource.Normalized()
	if dir == (Vec3{}) {
		return 0
	}

	right := at.Cross(up).Normalized()
	if right == (Vec3{}) {
		return 0
	}

	return Clamp(dir.Dot(right), -1, 1)
}

// ConstantPowerGains converts a pan position in [-1, 1] into left and
// right channel gains with constant total power.
func ConstantPowerGains(pan float64) (left, right float64) {
	angle := (Clamp(pan, -1, 1) + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// Doppler returns the pitch multiplier for a moving source and
// listener. toListener points from the source towards the listener;
// velocities are in meters per second. factor scales the effect, with
// 0 disabling it.
func Doppler(toListener, sourceVel, listenerVel Vec3, factor float64) float64 {
	if factor <= 0 {
		return 1.0
	}

	dir := toListener.Normalized()
	if dir == (Vec3{}) {
		return 1.0
	}

	// Velocities projected on the source-to-listener axis, clamped so
	// neither side exceeds the speed of sound
	limit := SpeedOfSound / factor
	vls := Clamp(listenerVel.Dot(dir), -limit, limit)
	vss := Clamp(sourceVel.Dot(dir), -limit, limit)

	num := SpeedOfSound - factor*vls
	den := SpeedOfSound - factor*vss
	if den <= 0 {
		return 1.0
	}

	return num / den
}
