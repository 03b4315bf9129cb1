// SPDX-License-Identifier: EPL-2.0

package fade

import (
	"math"
	"time"

	"github.com/stemstation/crossmix/analysis"
	"github.com/stemstation/crossmix/graph"
)

// Analysis-driven adjustment thresholds. These are heuristic tunables,
// not correctness invariants.
const (
	tempoSyncMaxDelta = 10.0 // BPM difference beyond which beats don't align
	highEnergy        = 0.8  // both above: hard linear cut reads better
	lowEnergy         = 0.3  // either below: gentle equal-power blend
	eqMatchMaxDB      = 6.0
	eqMatchMinRatio   = 0.5
	eqMatchMaxRatio   = 2.0
)

// Scheduler drives time-varying gains on the graph's two paths. It is a
// two-state machine: IDLE until Start, ACTIVE while ticking, back to IDLE
// on completion (with a path swap), on Stop (without one), or on a tick
// failure.
//
// The scheduler is cooperatively scheduled: the player calls Tick once per
// frame and nothing inside a tick blocks. All methods are safe for use
// from that single tick goroutine plus any goroutine calling Settings
// accessors.
type Scheduler struct {
	ctrl *graph.Controller

	// OnStart, OnProgress and OnComplete fire synchronously from Start
	// and Tick. Set them before the first Start; they must not call back
	// into the scheduler.
	OnStart    func(fromTrack, toTrack string)
	OnProgress func(progress float64)
	OnComplete func(toTrack string)

	now      func() time.Time
	settings CrossfadeSettings
	errs     chan error

	state       State
	preGain     float64
	postGain    float64
	incomingMul float64 // EQ-matching level pre-multiplier on the incoming path
}

// NewScheduler builds an idle scheduler over the given graph.
func NewScheduler(ctrl *graph.Controller, settings CrossfadeSettings) (*Scheduler, error) {
	if ctrl == nil {
		return nil, ErrNoGraph
	}
	return &Scheduler{
		ctrl:     ctrl,
		now:      time.Now,
		settings: settings.validate(),
		errs:     make(chan error, 8),
	}, nil
}

// Errors returns the channel scheduler-tick failures are reported on.
// A failed tick aborts the crossfade back to IDLE; playback itself keeps
// running, so these are diagnostics, never fatal.
func (s *Scheduler) Errors() <-chan error { return s.errs }

// Settings returns the current settings.
func (s *Scheduler) Settings() CrossfadeSettings { return s.settings }

// UpdateSettings merges a partial update. The merged settings take effect
// on the next Start; an active crossfade is not retuned.
func (s *Scheduler) UpdateSettings(patch CrossfadePatch) {
	s.settings = patch.apply(s.settings)
}

// State returns a snapshot of the crossfade machine.
func (s *Scheduler) State() State { return s.state }

// Start begins a crossfade from fromTrack to toTrack. Either analysis may
// be nil; analysis-driven adjustments (tempo sync, energy curve override,
// EQ matching) silently fall back to the configured duration and curve
// when one is missing.
//
// With crossfades disabled this is an instant switch: the active path is
// muted, the pending path raised to nominal, and the machine never leaves
// IDLE.
//
// Calling Start while a crossfade is active replaces the in-flight state
// immediately without resetting the physical gains first; the audible
// discontinuity is the documented behavior callers time against.
func (s *Scheduler) Start(fromTrack, toTrack string, from, to *analysis.TrackAnalysis) error {
	if s.ctrl.Destroyed() {
		return graph.ErrDestroyed
	}

	cfg := s.settings.validate()

	if !cfg.Enabled {
		// An instant switch supplants any fade in flight; without this
		// reset the old fade's next Tick would overwrite these gains and
		// later swap paths under the new track.
		s.state = State{}
		s.incomingMul = 1
		s.ctrl.ActivePath().SetGain(0)
		s.ctrl.PendingPath().SetGain(1)
		return nil
	}

	duration := cfg.Duration
	curve := cfg.Curve
	s.incomingMul = 1

	if from != nil && to != nil {
		if cfg.TempoSync {
			duration = tempoSyncDuration(duration, from.Tempo, to.Tempo)
		}
		curve = energyCurve(curve, from.Energy, to.Energy)
		if cfg.EQMatching {
			s.applyEQMatch(from, to)
		}
	}

	s.preGain = cfg.PreGain
	s.postGain = cfg.PostGain
	s.state = State{
		IsActive:  true,
		FromTrack: fromTrack,
		ToTrack:   toTrack,
		StartTime: s.now(),
		Duration:  duration,
		Curve:     curve,
	}

	if s.OnStart != nil {
		s.OnStart(fromTrack, toTrack)
	}
	return nil
}

// Tick advances an active crossfade. Progress derives from the monotonic
// clock, so it never moves backward; at 1.0 the paths swap roles, the
// machine returns to IDLE and OnComplete fires with the incoming track id.
// Tick is a no-op while IDLE.
func (s *Scheduler) Tick() {
	if !s.state.IsActive {
		return
	}

	elapsed := s.now().Sub(s.state.StartTime).Seconds()
	progress := elapsed / s.state.Duration
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	s.state.Progress = progress

	fromGain, toGain := s.state.Curve.Gains(progress)
	s.ctrl.ActivePath().SetGain(fromGain * s.preGain)
	s.ctrl.PendingPath().SetGain(toGain * s.postGain * s.incomingMul)

	if s.OnProgress != nil {
		s.OnProgress(progress)
	}

	if progress >= 1 {
		toTrack := s.state.ToTrack
		if err := s.ctrl.SwapPaths(); err != nil {
			s.abort(err)
			return
		}
		s.state = State{}
		s.incomingMul = 1
		if s.OnComplete != nil {
			s.OnComplete(toTrack)
		}
	}
}

// Stop halts an active crossfade without swapping paths and without
// resetting gains: whatever levels the last tick applied stay in force
// until the caller corrects them. This is deliberate; see Start for the
// restart semantics built on it.
func (s *Scheduler) Stop() {
	s.state = State{}
	s.incomingMul = 1
}

// abort forces the machine to IDLE and reports the failure without
// touching path gains; audio keeps flowing at whatever levels were last
// applied.
func (s *Scheduler) abort(err error) {
	s.state = State{}
	s.incomingMul = 1
	select {
	case s.errs <- err:
	default:
	}
}

// tempoSyncDuration snaps duration to a whole number of beats of the
// outgoing track, minimum one beat, when the two tempos are within
// tempoSyncMaxDelta BPM of each other.
func tempoSyncDuration(duration, fromBPM, toBPM float64) float64 {
	if fromBPM <= 0 || math.Abs(fromBPM-toBPM) >= tempoSyncMaxDelta {
		return duration
	}
	beat := 60 / fromBPM
	beats := math.Round(duration / beat)
	if beats < 1 {
		beats = 1
	}
	return beats * beat
}

// energyCurve overrides the configured curve from the two tracks' energy:
// two high-energy tracks get a straight linear blend, anything involving a
// low-energy track gets the gentler equal-power sine pair.
func energyCurve(configured Curve, fromEnergy, toEnergy float64) Curve {
	switch {
	case fromEnergy > highEnergy && toEnergy > highEnergy:
		return Linear
	case fromEnergy < lowEnergy || toEnergy < lowEnergy:
		return Sine
	default:
		return configured
	}
}

// applyEQMatch tilts the incoming path's high shelf toward the outgoing
// track's brightness and pre-scales its level by the RMS ratio.
func (s *Scheduler) applyEQMatch(from, to *analysis.TrackAnalysis) {
	shelf := (to.SpectralCentroid - from.SpectralCentroid) / 1000
	if shelf > eqMatchMaxDB {
		shelf = eqMatchMaxDB
	} else if shelf < -eqMatchMaxDB {
		shelf = -eqMatchMaxDB
	}
	s.ctrl.PendingPath().SetHighShelfDB(shelf)

	if from.AverageRMS <= 0 {
		// No usable reference level; leave the incoming level alone
		// rather than pushing a NaN or Inf ratio into the gain stage.
		return
	}
	ratio := to.AverageRMS / from.AverageRMS
	if ratio < eqMatchMinRatio {
		ratio = eqMatchMinRatio
	} else if ratio > eqMatchMaxRatio {
		ratio = eqMatchMaxRatio
	}
	s.incomingMul = ratio
}
