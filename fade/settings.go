// SPDX-License-Identifier: EPL-2.0

package fade

// minDuration is the floor a crossfade duration is clamped to so gain
// formulas never divide by zero.
const minDuration = 0.001

// CrossfadeSettings configures how track transitions sound. Changes apply
// to the next crossfade only; an in-flight fade keeps the settings it
// started with.
type CrossfadeSettings struct {
	Enabled  bool
	Duration float64 // seconds
	Curve    Curve

	// PreGain scales the outgoing path, PostGain the incoming one.
	PreGain  float64
	PostGain float64

	// EQMatching nudges the incoming track's high shelf and level toward
	// the outgoing track, when both analyses are available.
	EQMatching bool

	// TempoSync snaps the duration to whole beats of the outgoing track
	// when the two tempos are close.
	TempoSync bool
}

// DefaultCrossfadeSettings returns a 3 second enabled linear crossfade
// with unity pre/post gains and no analysis-driven adjustment.
func DefaultCrossfadeSettings() CrossfadeSettings {
	return CrossfadeSettings{
		Enabled:  true,
		Duration: 3,
		Curve:    Linear,
		PreGain:  1,
		PostGain: 1,
	}
}

// validate clamps the settings into usable ranges.
func (s CrossfadeSettings) validate() CrossfadeSettings {
	if s.Duration < minDuration {
		s.Duration = minDuration
	}
	if _, err := ParseCurve(string(s.Curve)); err != nil {
		s.Curve = Linear
	}
	if s.PreGain < 0 {
		s.PreGain = 0
	}
	if s.PostGain < 0 {
		s.PostGain = 0
	}
	return s
}

// GaplessSettings configures preloading and the analyzer's window sizing.
type GaplessSettings struct {
	Enabled     bool
	PreloadTime float64 // seconds before track end to start the next decode

	// AnalysisDepth bounds the analyzer's intro/outro scans, in seconds.
	AnalysisDepth float64

	FadeInDuration  float64
	FadeOutDuration float64

	// SilenceThresholdDB is the floor, in dBFS, below which trailing
	// audio counts as silence.
	SilenceThresholdDB float64
}

// DefaultGaplessSettings mirrors the player defaults: 5 second preload,
// 10 second analysis depth, half-second edge fades, -40 dBFS floor.
func DefaultGaplessSettings() GaplessSettings {
	return GaplessSettings{
		Enabled:            true,
		PreloadTime:        5,
		AnalysisDepth:      10,
		FadeInDuration:     0.5,
		FadeOutDuration:    0.5,
		SilenceThresholdDB: -40,
	}
}

// CrossfadePatch is a partial settings update; nil fields keep their
// current value. Patches merge into the store immediately but only take
// effect on the next crossfade start.
type CrossfadePatch struct {
	Enabled    *bool
	Duration   *float64
	Curve      *Curve
	PreGain    *float64
	PostGain   *float64
	EQMatching *bool
	TempoSync  *bool
}

func (p CrossfadePatch) apply(s CrossfadeSettings) CrossfadeSettings {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Curve != nil {
		s.Curve = *p.Curve
	}
	if p.PreGain != nil {
		s.PreGain = *p.PreGain
	}
	if p.PostGain != nil {
		s.PostGain = *p.PostGain
	}
	if p.EQMatching != nil {
		s.EQMatching = *p.EQMatching
	}
	if p.TempoSync != nil {
		s.TempoSync = *p.TempoSync
	}
	return s.validate()
}
