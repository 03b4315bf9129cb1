// SPDX-License-Identifier: EPL-2.0

// Package fade schedules curve-shaped crossfades over the two-path mixing
// graph.
//
// A Scheduler is a two-state machine driven by a periodic tick:
//
//	sched, _ := fade.NewScheduler(ctrl, fade.DefaultCrossfadeSettings())
//	sched.OnComplete = func(toTrack string) { /* relabel player state */ }
//
//	sched.Start("track-a", "track-b", fromAnalysis, toAnalysis)
//	for range frameTicker.C {
//	    sched.Tick()
//	}
//
// Each tick maps elapsed time to a progress in [0,1], evaluates the
// configured Curve into an (outgoing, incoming) gain pair and applies it
// to the graph's active and pending paths. At progress 1 the paths swap
// roles and the machine returns to idle.
//
// # Analysis-driven adjustment
//
// When both tracks' analyses are supplied, Start may retune the fade:
// tempo sync snaps the duration to whole beats of the outgoing track,
// track energies can override the curve (linear for two hot tracks, sine
// when either is quiet), and EQ matching tilts the incoming path's high
// shelf and level toward the outgoing track. Missing analyses silently
// fall back to the configured duration and curve; analysis quality never
// blocks playback.
//
// # Stop semantics
//
// Stop halts the machine without swapping paths or resetting gains. That
// asymmetry is intentional: restart timing is built on it, and callers
// that want a clean slate set the gains themselves.
package fade
