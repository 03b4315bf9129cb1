// SPDX-License-Identifier: EPL-2.0

package analysis

// boundaryWindowSec is the window length for intro/outro scans.
const boundaryWindowSec = 0.1

// findIntro slides non-overlapping 100 ms windows over the first
// depthSeconds of the buffer. The intro ends at the first later window
// whose RMS exceeds 1.5x the opening window's RMS; without such a jump the
// track is considered to start at full level and has no intro.
func findIntro(samples []float32, sampleRate int, depthSeconds float64) (bool, float64) {
	winLen := int(boundaryWindowSec * float64(sampleRate))
	head := samples
	if depth := int(depthSeconds * float64(sampleRate)); depth < len(head) {
		head = head[:depth]
	}

	rms := windowedRMS(head, winLen)
	if len(rms) < 2 {
		return false, 0
	}

	ref := rms[0]
	for i := 1; i < len(rms); i++ {
		if rms[i] > 1.5*ref {
			return true, float64(i) * boundaryWindowSec
		}
	}
	return false, 0
}

// findOutro scans the last depthSeconds backward in 100 ms windows for the
// point where the level collapses: the latest window still at >= 0.8x the
// overall average whose successor drops below 0.5x that average. The outro
// starts at that window.
func findOutro(samples []float32, sampleRate int, depthSeconds float64, overallRMS float64) (bool, float64) {
	if overallRMS <= 0 {
		return false, 0
	}

	winLen := int(boundaryWindowSec * float64(sampleRate))
	tail := samples
	offset := 0.0
	if depth := int(depthSeconds * float64(sampleRate)); depth < len(tail) {
		offset = float64(len(tail)-depth) / float64(sampleRate)
		tail = tail[len(tail)-depth:]
	}

	rms := windowedRMS(tail, winLen)
	for i := len(rms) - 2; i >= 0; i-- {
		if rms[i] >= 0.8*overallRMS && rms[i+1] < 0.5*overallRMS {
			return true, offset + float64(i)*boundaryWindowSec
		}
	}
	return false, 0
}
