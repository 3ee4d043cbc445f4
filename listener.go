// SPDX-License-Identifier: MIT

package auris

import "sync"

// The listener is process-global, like the output device it hears
// through.
var (
	listenerMu  sync.RWMutex
	listenerVol = 1.0
	listenerPos Vector
	listenerVel Vector
	listenerAt  = Vector{0, 0, -1}
	listenerUp  = Vector{0, 1, 0}
)

// SetListenerVolume scales the final mix; 1.0 is unity gain.
func SetListenerVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}

	listenerMu.Lock()
	listenerVol = volume
	listenerMu.Unlock()
}

func ListenerVolume() float64 {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return listenerVol
}

// SetListenerPosition places the listener in world coordinates.
func SetListenerPosition(pos Vector) {
	listenerMu.Lock()
	listenerPos = pos
	listenerMu.Unlock()
}

func ListenerPosition() Vector {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return listenerPos
}

// SetListenerVelocity sets the listener velocity used for doppler
// shift.
func SetListenerVelocity(vel Vector) {
	listenerMu.Lock()
	listenerVel = vel
	listenerMu.Unlock()
}

func ListenerVelocity() Vector {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return listenerVel
}

// SetListenerOrientation points the listener. at is the facing
// direction, up disambiguates roll; the default is at {0,0,-1},
// up {0,1,0}.
func SetListenerOrientation(at, up Vector) {
	listenerMu.Lock()
	listenerAt = at
	listenerUp = up
	listenerMu.Unlock()
}

func ListenerOrientation() (at, up Vector) {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return listenerAt, listenerUp
}

// listenerSnapshot is what a voice reads once per render block.
type listenerSnapshot struct {
	vol    float64
	pos    Vector
	vel    Vector
	at, up Vector
}

func snapshotListener() listenerSnapshot {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return listenerSnapshot{
		vol: listenerVol,
		pos: listenerPos,
		vel: listenerVel,
		at:  listenerAt,
		up:  listenerUp,
	}
}
