// SPDX-License-Identifier: EPL-2.0

// Package analysis derives structural and perceptual features from decoded
// PCM sample buffers.
//
// The entry point is Analyze, a pure function from (samples, sampleRate)
// to a TrackAnalysis value:
//
//	a := analysis.Analyze(samples, 44100, analysis.DefaultOptions())
//	fmt.Println(a.Tempo, a.Key, a.SpectralCentroid)
//
// # Features
//
// Analyze reports:
//   - Level features: full-buffer RMS, absolute peak, and energy.
//   - Structural boundaries: intro end and outro start, found by sliding
//     100 ms RMS windows over the head and tail of the buffer.
//   - Trailing silence: the region from the last audible 10 ms window to
//     the end of the buffer.
//   - Spectral centroid: the magnitude-weighted mean frequency of the
//     opening 2048-sample spectrum, a brightness proxy.
//   - Tempo: BPM from the median inter-onset interval, onsets flagged by
//     spectral-flux jumps over the first four seconds.
//   - Key: the dominant chroma pitch class, always reported as a major
//     key. This is a heuristic, not music-theory-correct key detection.
//
// # Determinism
//
// Analyze never fails and never allocates shared state: identical inputs
// produce bit-identical outputs on every call. Degenerate inputs (empty
// buffer, zero sample rate) yield the all-default analysis with tempo 120
// and key "C major". This makes results safe to cache and safe to compute
// concurrently; see Cache.
//
// # Analysis windows
//
// Options sizes the boundary and silence scans. Derive it from the
// player's gapless settings so analysis depth follows the preload window:
//
//	opts := analysis.Options{DepthSeconds: 10, SilenceThresholdDB: -40}
package analysis
