// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// MagnitudeSpectrum computes the Hann-windowed magnitude spectrum of the
// first n samples of the buffer via a direct DFT, returning bins 0..n/2.
// The window keeps leakage tails from swamping the centroid and chroma
// sums; without it a pure tone's centroid lands hundreds of Hz high.
//
// The O(n^2) DFT is deliberate: n is small and fixed and the analysis runs
// once per track off the audio path. An FFT substitution is fine as long
// as the magnitudes match within floating-point tolerance.
func MagnitudeSpectrum(samples []float32, n int) []float64 {
	if len(samples) < n {
		n = len(samples)
	}
	if n == 0 {
		return nil
	}

	windowed := make([]float64, n)
	if n == 1 {
		windowed[0] = float64(samples[0])
	} else {
		for t := range windowed {
			hann := 0.5 * (1 - math.Cos(2*math.Pi*float64(t)/float64(n-1)))
			windowed[t] = float64(samples[t]) * hann
		}
	}

	half := n / 2
	mags := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		var re, im float64
		w := -2 * math.Pi * float64(k) / float64(n)
		for t, v := range windowed {
			angle := w * float64(t)
			re += v * math.Cos(angle)
			im += v * math.Sin(angle)
		}
		mags[k] = math.Hypot(re, im)
	}
	return mags
}

// binWidth returns the frequency width in Hz of one bin of a spectrum as
// produced by MagnitudeSpectrum (bins 0..n/2 for an n-point DFT).
func binWidth(mags []float64, sampleRate int) float64 {
	n := 2 * (len(mags) - 1)
	if n <= 0 {
		return 0
	}
	return float64(sampleRate) / float64(n)
}

// spectralCentroid returns the magnitude-weighted mean frequency in Hz of
// the given spectrum, or 0 for a silent spectrum.
func spectralCentroid(mags []float64, sampleRate int) float64 {
	var weighted, total float64
	binHz := binWidth(mags, sampleRate)
	for k, m := range mags {
		weighted += float64(k) * binHz * m
		total += m
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
