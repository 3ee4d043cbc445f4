// SPDX-License-Identifier: MIT

package auris

// State describes where a playback instance is in its lifecycle.
type State int

const (
	// Initial means the instance was created but never played.
	Initial State = iota

	// Playing means samples are being fed to the output device.
	Playing

	// Paused means playback is suspended and will resume from the
	// current position.
	Paused

	// Stopped means playback ended or was stopped; playing again
	// restarts from the beginning.
	Stopped
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
