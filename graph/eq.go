// SPDX-License-Identifier: EPL-2.0

package graph

// Fixed band centers of the per-path EQ. Matches the mixing chain these
// paths emulate: low shelf at 320 Hz, mid peak at 1 kHz with Q 0.7, high
// shelf at 3.2 kHz.
const (
	eqLowFreq  = 320.0
	eqMidFreq  = 1000.0
	eqMidQ     = 0.7
	eqHighFreq = 3200.0
)

// EQGains holds the three band gains of a path EQ, in dB.
type EQGains struct {
	LowDB  float64
	MidDB  float64
	HighDB float64
}

// threeBandEQ chains a low shelf, a mid peak and a high shelf section.
type threeBandEQ struct {
	sampleRate int
	gains      EQGains
	low        biquad
	mid        biquad
	high       biquad
}

func newThreeBandEQ(sampleRate int) *threeBandEQ {
	eq := &threeBandEQ{sampleRate: sampleRate}
	eq.setGains(EQGains{})
	return eq
}

// setGains reconfigures all three sections. Filter state is kept so gain
// changes mid-stream do not click.
func (eq *threeBandEQ) setGains(g EQGains) {
	eq.gains = g
	eq.low.lowShelf(eq.sampleRate, eqLowFreq, g.LowDB)
	eq.mid.peaking(eq.sampleRate, eqMidFreq, g.MidDB, eqMidQ)
	eq.high.highShelf(eq.sampleRate, eqHighFreq, g.HighDB)
}

func (eq *threeBandEQ) setHighShelfDB(db float64) {
	eq.gains.HighDB = db
	eq.high.highShelf(eq.sampleRate, eqHighFreq, db)
}

// process runs samples through all three bands in place.
func (eq *threeBandEQ) process(samples []float32) {
	eq.low.process(samples)
	eq.mid.process(samples)
	eq.high.process(samples)
}

// reset zeroes the band gains and clears filter state.
func (eq *threeBandEQ) reset() {
	eq.setGains(EQGains{})
	eq.low.reset()
	eq.mid.reset()
	eq.high.reset()
}
