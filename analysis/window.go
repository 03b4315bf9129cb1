// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// windowRMS returns the RMS of one window of samples.
func windowRMS(window []float32) float64 {
	if len(window) == 0 {
		return 0
	}
	var sumSq float64
	for _, s := range window {
		v := float64(s)
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(window)))
}

// windowedRMS slices region into non-overlapping windows of winLen samples
// and returns each window's RMS. A trailing partial window is dropped.
func windowedRMS(region []float32, winLen int) []float64 {
	if winLen <= 0 || len(region) < winLen {
		return nil
	}
	n := len(region) / winLen
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = windowRMS(region[i*winLen : (i+1)*winLen])
	}
	return out
}

// spectralFlux measures the frame-to-frame magnitude-spectrum change
// between two windows, counting only rising bins (half-wave rectified).
// Onsets produce sharp flux spikes; steady tones produce near-zero flux.
func spectralFlux(prev, cur []float64) float64 {
	n := len(prev)
	if len(cur) < n {
		n = len(cur)
	}
	var flux float64
	for i := 0; i < n; i++ {
		d := cur[i] - prev[i]
		if d > 0 {
			flux += d
		}
	}
	return flux
}
