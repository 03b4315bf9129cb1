// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// silenceWindowSec is the window length for the trailing-silence scan,
// finer than the boundary scan so fade tails resolve cleanly.
const silenceWindowSec = 0.01

// findEndingSilence scans backward from the end of the buffer in 10 ms
// windows for the last audible window. SilenceStart is where that window
// ends; SilenceEnd is always the buffer duration. A track that ends loud
// reports a zero-length silence region; an entirely silent buffer reports
// the whole duration.
func findEndingSilence(samples []float32, sampleRate int, thresholdDB float64) (start, end float64) {
	duration := float64(len(samples)) / float64(sampleRate)
	threshold := math.Pow(10, thresholdDB/20)

	winLen := int(silenceWindowSec * float64(sampleRate))
	if winLen <= 0 {
		winLen = 1
	}

	for winEnd := len(samples); winEnd > 0; winEnd -= winLen {
		winStart := winEnd - winLen
		if winStart < 0 {
			winStart = 0
		}
		if windowRMS(samples[winStart:winEnd]) > threshold {
			return float64(winEnd) / float64(sampleRate), duration
		}
	}
	return 0, duration
}
