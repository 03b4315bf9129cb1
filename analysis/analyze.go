// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// Analyze derives a TrackAnalysis from a mono sample buffer. It never
// fails: an empty buffer or non-positive sample rate yields the all-default
// analysis (zero levels, tempo 120, key "C major", no boundaries).
//
// Samples are expected in [-1, 1]. Multi-channel audio should be mixed down
// first (see audio.MonoMixer); only the first channel's perspective is
// meaningful here.
func Analyze(samples []float32, sampleRate int, opts Options) TrackAnalysis {
	out := TrackAnalysis{
		Tempo: defaultTempo,
		Key:   defaultKey,
	}
	if len(samples) == 0 || sampleRate <= 0 {
		return out
	}
	if opts.DepthSeconds <= 0 {
		opts.DepthSeconds = DefaultOptions().DepthSeconds
	}
	if opts.SilenceThresholdDB >= 0 {
		opts.SilenceThresholdDB = DefaultOptions().SilenceThresholdDB
	}

	out.AverageRMS, out.PeakLevel = levels(samples)
	out.Energy = math.Min(out.AverageRMS, 1)

	out.HasIntro, out.IntroEnd = findIntro(samples, sampleRate, opts.DepthSeconds)
	out.HasOutro, out.OutroStart = findOutro(samples, sampleRate, opts.DepthSeconds, out.AverageRMS)
	out.SilenceStart, out.SilenceEnd = findEndingSilence(samples, sampleRate, opts.SilenceThresholdDB)

	spectrum := MagnitudeSpectrum(samples, spectrumSize)
	out.SpectralCentroid = spectralCentroid(spectrum, sampleRate)
	out.Key = estimateKey(spectrum, sampleRate)
	out.Tempo = estimateTempo(samples, sampleRate)

	return out
}

const (
	defaultTempo = 120.0
	defaultKey   = "C major"

	// spectrumSize is the DFT length for centroid and key estimation,
	// taken over the opening samples of the buffer.
	spectrumSize = 2048
)

// levels computes the full-buffer RMS and absolute peak.
func levels(samples []float32) (rms, peak float64) {
	var sumSq float64
	for _, s := range samples {
		v := float64(s)
		sumSq += v * v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return math.Sqrt(sumSq / float64(len(samples))), peak
}
