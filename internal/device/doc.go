// SPDX-License-Identifier: MIT

// Package device owns the process-wide audio hardware handles: the oto
// output context used for playback and malgo capture devices used for
// recording.
//
// The playback context is a singleton because oto permits only one per
// process. It is created lazily on first use with sensible defaults,
// or explicitly through InitPlayback when the application wants a
// specific sample rate or latency.
package device
