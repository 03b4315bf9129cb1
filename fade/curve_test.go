// SPDX-License-Identifier: EPL-2.0

package fade

import (
	"math"
	"testing"
)

var allCurves = []Curve{Linear, Exponential, Logarithmic, Sine, Cosine}

func TestCurve_Endpoints(t *testing.T) {
	t.Parallel()

	for _, curve := range allCurves {
		from0, to0 := curve.Gains(0)
		from1, to1 := curve.Gains(1)

		if math.Abs(from0-1) > 1e-9 || math.Abs(to0) > 1e-9 {
			t.Errorf("%s: Gains(0) = (%v, %v), want (1, 0)", curve, from0, to0)
		}
		if math.Abs(from1) > 1e-9 || math.Abs(to1-1) > 1e-9 {
			t.Errorf("%s: Gains(1) = (%v, %v), want (0, 1)", curve, from1, to1)
		}
	}
}

func TestCurve_Monotonic(t *testing.T) {
	t.Parallel()

	const steps = 1000
	for _, curve := range allCurves {
		prevFrom, prevTo := curve.Gains(0)
		for i := 1; i <= steps; i++ {
			p := float64(i) / steps
			from, to := curve.Gains(p)
			if from > prevFrom+1e-12 {
				t.Fatalf("%s: fromGain increased at p=%v (%v -> %v)", curve, p, prevFrom, from)
			}
			if to < prevTo-1e-12 {
				t.Fatalf("%s: toGain decreased at p=%v (%v -> %v)", curve, p, prevTo, to)
			}
			prevFrom, prevTo = from, to
		}
	}
}

func TestCurve_ClampsProgress(t *testing.T) {
	t.Parallel()

	for _, curve := range allCurves {
		fromNeg, toNeg := curve.Gains(-0.5)
		fromBig, toBig := curve.Gains(1.5)
		if fromNeg != 1 || toNeg != 0 {
			t.Errorf("%s: Gains(-0.5) = (%v, %v), want (1, 0)", curve, fromNeg, toNeg)
		}
		if math.Abs(fromBig) > 1e-9 || math.Abs(toBig-1) > 1e-9 {
			t.Errorf("%s: Gains(1.5) = (%v, %v), want (0, 1)", curve, fromBig, toBig)
		}
	}
}

func TestCurve_MidpointValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		curve    Curve
		from, to float64
	}{
		{Linear, 0.5, 0.5},
		{Exponential, 0.25, 0.25},
		{Logarithmic, math.Log(1 + 0.5*(math.E-1)), math.Log(1 + 0.5*(math.E-1))},
		{Sine, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{Cosine, 0.5, 0.5},
	}

	for _, tt := range tests {
		from, to := tt.curve.Gains(0.5)
		if math.Abs(from-tt.from) > 1e-9 || math.Abs(to-tt.to) > 1e-9 {
			t.Errorf("%s: Gains(0.5) = (%v, %v), want (%v, %v)", tt.curve, from, to, tt.from, tt.to)
		}
	}
}

func TestParseCurve(t *testing.T) {
	t.Parallel()

	for _, curve := range allCurves {
		got, err := ParseCurve(string(curve))
		if err != nil || got != curve {
			t.Errorf("ParseCurve(%q) = %v, %v", curve, got, err)
		}
	}

	if _, err := ParseCurve("triangle"); err != ErrUnknownCurve {
		t.Errorf("ParseCurve(\"triangle\") error = %v, want ErrUnknownCurve", err)
	}
}
