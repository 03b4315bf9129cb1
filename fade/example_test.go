// SPDX-License-Identifier: EPL-2.0

package fade_test

import (
	"fmt"

	"github.com/stemstation/crossmix/fade"
)

// ExampleCurve_Gains shows how a curve shapes the two track gains
// across a transition.
func ExampleCurve_Gains() {
	for _, p := range []float64{0, 0.5, 1} {
		from, to := fade.Linear.Gains(p)
		fmt.Printf("progress %.1f: outgoing %.2f, incoming %.2f\n", p, from, to)
	}
	// Output:
	// progress 0.0: outgoing 1.00, incoming 0.00
	// progress 0.5: outgoing 0.50, incoming 0.50
	// progress 1.0: outgoing 0.00, incoming 1.00
}

// ExampleParseCurve demonstrates parsing curve names from settings.
func ExampleParseCurve() {
	curve, err := fade.ParseCurve("sine")
	fmt.Println(curve, err)

	_, err = fade.ParseCurve("bezier")
	fmt.Println(err)
	// Output:
	// sine <nil>
	// unknown crossfade curve
}
