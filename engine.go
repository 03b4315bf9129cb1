// SPDX-License-Identifier: EPL-2.0

package crossmix

import (
	"github.com/stemstation/crossmix/analysis"
	"github.com/stemstation/crossmix/audio"
	"github.com/stemstation/crossmix/fade"
	"github.com/stemstation/crossmix/graph"
)

// Engine ties the analysis cache, mixing graph and crossfade scheduler
// into one explicitly constructed unit owned by the playback subsystem.
// There is no package-level engine; every player builds its own.
type Engine struct {
	Graph *graph.Controller
	Fader *fade.Scheduler

	cache   *analysis.Cache
	gapless fade.GaplessSettings
}

// NewEngine builds an engine mixing at sampleRate.
func NewEngine(sampleRate int, crossfade fade.CrossfadeSettings, gapless fade.GaplessSettings) (*Engine, error) {
	ctrl := graph.NewController(sampleRate)
	sched, err := fade.NewScheduler(ctrl, crossfade)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Graph:   ctrl,
		Fader:   sched,
		cache:   analysis.NewCache(),
		gapless: gapless,
	}, nil
}

// analysisOptions derives analyzer window sizing from the gapless settings.
func (e *Engine) analysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	if e.gapless.AnalysisDepth > 0 {
		opts.DepthSeconds = e.gapless.AnalysisDepth
	}
	if e.gapless.SilenceThresholdDB < 0 {
		opts.SilenceThresholdDB = e.gapless.SilenceThresholdDB
	}
	return opts
}

// Analyze computes (or returns the cached) analysis for a track's sample
// buffer. Analysis is deterministic, so the cache never goes stale for a
// given id as long as the id identifies the audio content.
func (e *Engine) Analyze(trackID string, samples []float32, sampleRate int) analysis.TrackAnalysis {
	return e.cache.GetOrCompute(trackID, func() analysis.TrackAnalysis {
		return analysis.Analyze(samples, sampleRate, e.analysisOptions())
	})
}

// CachedAnalysis returns a previously computed analysis, if any.
func (e *Engine) CachedAnalysis(trackID string) (analysis.TrackAnalysis, bool) {
	return e.cache.Get(trackID)
}

// Crossfade starts a transition between two analyzed tracks, looking up
// whatever analyses the cache holds. Missing analyses simply disable the
// analysis-driven adjustments for this fade.
func (e *Engine) Crossfade(fromTrack, toTrack string) error {
	var from, to *analysis.TrackAnalysis
	if a, ok := e.cache.Get(fromTrack); ok {
		from = &a
	}
	if a, ok := e.cache.Get(toTrack); ok {
		to = &a
	}
	return e.Fader.Start(fromTrack, toTrack, from, to)
}

// ConnectCurrentTrack routes a decoded source onto the active path and
// returns the master output.
func (e *Engine) ConnectCurrentTrack(src audio.Source) (audio.Source, error) {
	return e.Graph.ConnectCurrentTrack(src)
}

// ConnectNextTrack routes a decoded source onto the pending path.
func (e *Engine) ConnectNextTrack(src audio.Source) (audio.Source, error) {
	return e.Graph.ConnectNextTrack(src)
}

// Gapless returns the engine's gapless settings.
func (e *Engine) Gapless() fade.GaplessSettings { return e.gapless }

// Close tears the mixing graph down. Safe to call more than once.
func (e *Engine) Close() {
	e.Graph.Destroy()
}
