// SPDX-License-Identifier: EPL-2.0

package analysis

// TrackAnalysis holds the structural and perceptual features derived from a
// decoded track. It is a pure function of the sample buffer and sample rate:
// analyzing the same buffer twice yields a bit-identical result, so cached
// values never need invalidation.
type TrackAnalysis struct {
	// Structural boundaries, in seconds from the start of the buffer.
	HasIntro   bool
	HasOutro   bool
	IntroEnd   float64
	OutroStart float64

	// Trailing silence region. SilenceEnd always equals the buffer
	// duration; SilenceStart equals it too when the track ends loud.
	SilenceStart float64
	SilenceEnd   float64

	// Level measurements over the full buffer.
	AverageRMS float64
	PeakLevel  float64

	// SpectralCentroid is the magnitude-weighted mean frequency in Hz,
	// a brightness proxy taken from the opening spectrum.
	SpectralCentroid float64

	// Tempo in BPM, clamped to [60,200]. 120 when onset detection finds
	// fewer than two onsets.
	Tempo float64

	// Key is the estimated key as "<Note> major". The quality is always
	// major; this is a chroma argmax heuristic, not real key detection.
	Key string

	// Energy in [0,1], the full-buffer RMS.
	Energy float64
}

// Options controls analyzer window sizing. The zero value is not useful;
// use DefaultOptions or derive one from the player's gapless settings.
type Options struct {
	// DepthSeconds bounds how far into the head and tail of the buffer
	// the intro/outro scans look.
	DepthSeconds float64

	// SilenceThresholdDB is the RMS level, in dBFS, below which a window
	// counts as silent for the trailing-silence scan.
	SilenceThresholdDB float64
}

// DefaultOptions returns the analyzer defaults: 10 second boundary scans
// and a -40 dBFS silence floor.
func DefaultOptions() Options {
	return Options{
		DepthSeconds:       10,
		SilenceThresholdDB: -40,
	}
}
