// SPDX-License-Identifier: EPL-2.0

package analysis

import "sort"

const (
	// tempoScanSec bounds how much of the track onset detection reads.
	tempoScanSec = 4.0
	// tempoHopSec is the hop between onset-detection frames.
	tempoHopSec = 0.01
	// tempoFrameLen is the DFT length per onset frame. Small on purpose:
	// onset flux needs time resolution, not frequency resolution.
	tempoFrameLen = 256

	minBPM = 60.0
	maxBPM = 200.0
)

// estimateTempo runs onset detection over the first four seconds of the
// buffer: 10 ms hops, spectral flux against the previous frame, an onset
// flagged when flux jumps above 1.5x the previous flux and an absolute
// floor of 0.01. BPM is 60 over the median inter-onset interval, clamped
// to [60,200]. Fewer than two onsets falls back to 120.
func estimateTempo(samples []float32, sampleRate int) float64 {
	hop := int(tempoHopSec * float64(sampleRate))
	if hop <= 0 {
		return defaultTempo
	}
	scan := samples
	if limit := int(tempoScanSec * float64(sampleRate)); limit < len(scan) {
		scan = scan[:limit]
	}

	var (
		prevMags []float64
		prevFlux float64
		onsets   []float64
	)
	for pos := 0; pos+tempoFrameLen <= len(scan); pos += hop {
		mags := MagnitudeSpectrum(scan[pos:pos+tempoFrameLen], tempoFrameLen)
		if prevMags != nil {
			flux := spectralFlux(prevMags, mags)
			if flux > 1.5*prevFlux && flux > 0.01 {
				onsets = append(onsets, float64(pos)/float64(sampleRate))
			}
			prevFlux = flux
		}
		prevMags = mags
	}

	if len(onsets) < 2 {
		return defaultTempo
	}

	intervals := make([]float64, len(onsets)-1)
	for i := 1; i < len(onsets); i++ {
		intervals[i-1] = onsets[i] - onsets[i-1]
	}
	m := median(intervals)
	if m <= 0 {
		return defaultTempo
	}

	bpm := 60 / m
	if bpm < minBPM {
		bpm = minBPM
	} else if bpm > maxBPM {
		bpm = maxBPM
	}
	return bpm
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
