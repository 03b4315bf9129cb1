// SPDX-License-Identifier: EPL-2.0

// Package graph implements the two-path gain-mixing graph that crossfades
// are performed on.
//
// A Controller owns exactly two mixing lanes ("paths"). Each path chains a
// 3-band EQ (low shelf 320 Hz, mid peak 1 kHz, high shelf 3.2 kHz), a gain
// stage and a read-only analyser tap; both paths sum into a shared master
// output that implements audio.Source:
//
//	ctrl := graph.NewController(44100)
//	out, err := ctrl.ConnectCurrentTrack(decoded)
//	// route out to the playback device
//
// # Role swapping
//
// The paths are fixed for the controller's lifetime. Which one is "active"
// (currently audible) and which is "pending" (the incoming track) is a
// label, flipped by SwapPaths in O(1) with no reconnection:
//
//	ctrl.ConnectNextTrack(next)
//	// ... crossfade drives the two path gains ...
//	ctrl.SwapPaths() // pending becomes active; old active is silenced
//
// Outside a crossfade exactly one path is audible at nominal gain.
//
// # Analyser taps
//
// Taps returns both paths' analysers. A visualizer can read time-domain
// snapshots or magnitude spectra from them at any time without touching
// the audio path.
//
// # Lifecycle
//
// Destroy detaches both paths and is idempotent. Any operation after
// Destroy returns ErrDestroyed; that always indicates a caller bug, not a
// runtime condition to retry.
package graph
