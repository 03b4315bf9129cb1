// SPDX-License-Identifier: EPL-2.0

package fade

import "math"

// Curve names a crossfade gain shape. The zero value is not valid; use
// the constants below or ParseCurve.
type Curve string

const (
	Linear      Curve = "linear"
	Exponential Curve = "exponential"
	Logarithmic Curve = "logarithmic"
	Sine        Curve = "sine"
	Cosine      Curve = "cosine"
)

// ParseCurve validates a curve name.
func ParseCurve(name string) (Curve, error) {
	switch c := Curve(name); c {
	case Linear, Exponential, Logarithmic, Sine, Cosine:
		return c, nil
	}
	return "", ErrUnknownCurve
}

// Gains returns the (outgoing, incoming) gain pair at progress p. p is
// clamped to [0,1]; every curve satisfies from(0)=1, to(0)=0, from(1)=0,
// to(1)=1, with from non-increasing and to non-decreasing in between.
// Unknown curves fall back to linear.
func (c Curve) Gains(p float64) (from, to float64) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	switch c {
	case Exponential:
		return (1 - p) * (1 - p), p * p
	case Logarithmic:
		// ln(1 + x*(e-1)) maps [0,1] onto [0,1]
		return math.Log(1 + (1-p)*(math.E-1)), math.Log(1 + p*(math.E-1))
	case Sine:
		// equal-power pair
		return math.Cos(p * math.Pi / 2), math.Sin(p * math.Pi / 2)
	case Cosine:
		return (math.Cos(p*math.Pi) + 1) / 2, (1 - math.Cos(p*math.Pi)) / 2
	default:
		return 1 - p, p
	}
}
