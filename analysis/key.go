// SPDX-License-Identifier: EPL-2.0

package analysis

import "math"

// noteNames indexes pitch classes from C, so 440 Hz lands on index 9 ("A").
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// estimateKey folds the spectrum into a 12-bin chroma vector and reports
// the dominant pitch class as a major key. Bins outside (80, 2000) Hz are
// ignored; below that the DFT resolution smears pitch classes together and
// above it harmonics dominate. The major quality is hard-coded: this is a
// brightness-cheap heuristic, not scale detection.
func estimateKey(mags []float64, sampleRate int) string {
	binHz := binWidth(mags, sampleRate)
	if binHz == 0 {
		return defaultKey
	}

	var chroma [12]float64
	for k, m := range mags {
		freq := float64(k) * binHz
		if freq <= 80 || freq >= 2000 {
			continue
		}
		pc := pitchClass(freq)
		chroma[pc] += m
	}

	best, bestVal := 0, 0.0
	for pc, v := range chroma {
		if v > bestVal {
			best, bestVal = pc, v
		}
	}
	if bestVal == 0 {
		return defaultKey
	}
	return noteNames[best] + " major"
}

// pitchClass maps a frequency to its C-based pitch class index, using A440
// as the anchor: round(12*log2(f/440)) semitones from A, shifted so C = 0.
func pitchClass(freq float64) int {
	semis := int(math.Round(12 * math.Log2(freq/440)))
	pc := (semis%12 + 12 + 9) % 12
	return pc
}
