// SPDX-License-Identifier: MIT

package utils

// Float32ToInt16 clamps a sample to [-1, 1] and scales it to 16-bit
// PCM. The positive scale is 32767 so full-scale input cannot
// overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 maps a 16-bit PCM sample into [-1, 1).
func Int16ToFloat32(x int16) float32 {
	return float32(x) / 32768.0
}
