// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"sync"

	"github.com/stemstation/crossmix/analysis"
)

// tapSize is the number of recent post-gain samples a Tap retains, sized
// to feed one visualizer frame.
const tapSize = 2048

// Tap is a read-only analyser attached to a path's output. The path writes
// every processed block into the tap's ring buffer; visualizers read
// snapshots. Reads never affect the audio path.
type Tap struct {
	mtx  sync.Mutex
	ring [tapSize]float32
	pos  int
	full bool
}

// write appends processed samples to the ring, overwriting the oldest.
func (t *Tap) write(samples []float32) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	for _, s := range samples {
		t.ring[t.pos] = s
		t.pos++
		if t.pos == tapSize {
			t.pos = 0
			t.full = true
		}
	}
}

// Samples returns a copy of the most recent samples, oldest first. Before
// the ring fills it returns only what has been written.
func (t *Tap) Samples() []float32 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if !t.full {
		out := make([]float32, t.pos)
		copy(out, t.ring[:t.pos])
		return out
	}

	out := make([]float32, tapSize)
	n := copy(out, t.ring[t.pos:])
	copy(out[n:], t.ring[:t.pos])
	return out
}

// Magnitudes returns the magnitude spectrum of the current snapshot, for
// frequency-domain visualizers. Computed on the reader's goroutine, never
// on the audio path.
func (t *Tap) Magnitudes() []float64 {
	return analysis.MagnitudeSpectrum(t.Samples(), tapSize)
}

// Size returns the tap's capacity in samples.
func (t *Tap) Size() int { return tapSize }
