// SPDX-License-Identifier: EPL-2.0

package graph

import "math"

// biquad is a single second-order IIR filter section in direct form I.
// Coefficients follow the Audio EQ Cookbook (RBJ) so the shelf and peaking
// responses match what a Web Audio BiquadFilterNode produces.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64

	// filter state
	x1, x2 float64
	y1, y2 float64
}

// process filters samples in place.
func (f *biquad) process(samples []float32) {
	for i, s := range samples {
		x := float64(s)
		y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
		f.x2, f.x1 = f.x1, x
		f.y2, f.y1 = f.y1, y
		samples[i] = float32(y)
	}
}

// reset clears the filter state without touching coefficients.
func (f *biquad) reset() {
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

func (f *biquad) setCoeffs(b0, b1, b2, a0, a1, a2 float64) {
	f.b0 = b0 / a0
	f.b1 = b1 / a0
	f.b2 = b2 / a0
	f.a1 = a1 / a0
	f.a2 = a2 / a0
}

// lowShelf configures the section as a low shelf at freq with gainDB.
func (f *biquad) lowShelf(sampleRate int, freq, gainDB float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW, sinW := math.Cos(w0), math.Sin(w0)
	alpha := sinW / 2 * math.Sqrt2 // shelf slope S = 1

	sqrtA := math.Sqrt(a)
	f.setCoeffs(
		a*((a+1)-(a-1)*cosW+2*sqrtA*alpha),
		2*a*((a-1)-(a+1)*cosW),
		a*((a+1)-(a-1)*cosW-2*sqrtA*alpha),
		(a+1)+(a-1)*cosW+2*sqrtA*alpha,
		-2*((a-1)+(a+1)*cosW),
		(a+1)+(a-1)*cosW-2*sqrtA*alpha,
	)
}

// highShelf configures the section as a high shelf at freq with gainDB.
func (f *biquad) highShelf(sampleRate int, freq, gainDB float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW, sinW := math.Cos(w0), math.Sin(w0)
	alpha := sinW / 2 * math.Sqrt2

	sqrtA := math.Sqrt(a)
	f.setCoeffs(
		a*((a+1)+(a-1)*cosW+2*sqrtA*alpha),
		-2*a*((a-1)+(a+1)*cosW),
		a*((a+1)+(a-1)*cosW-2*sqrtA*alpha),
		(a+1)-(a-1)*cosW+2*sqrtA*alpha,
		2*((a-1)-(a+1)*cosW),
		(a+1)-(a-1)*cosW-2*sqrtA*alpha,
	)
}

// peaking configures the section as a peaking EQ at freq with gainDB and q.
func (f *biquad) peaking(sampleRate int, freq, gainDB, q float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW, sinW := math.Cos(w0), math.Sin(w0)
	alpha := sinW / (2 * q)

	f.setCoeffs(
		1+alpha*a,
		-2*cosW,
		1-alpha*a,
		1+alpha/a,
		-2*cosW,
		1-alpha/a,
	)
}
