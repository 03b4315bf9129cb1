// SPDX-License-Identifier: EPL-2.0

package crossmix_test

import (
	"fmt"
	"math"

	"github.com/stemstation/crossmix"
	"github.com/stemstation/crossmix/fade"
)

// Example_analyzeAndCrossfade walks the full engine flow: analyze two
// tracks, connect their sources and run a crossfade to completion.
func Example_analyzeAndCrossfade() {
	engine, err := crossmix.NewEngine(44100,
		fade.DefaultCrossfadeSettings(), fade.DefaultGaplessSettings())
	if err != nil {
		fmt.Println("engine error:", err)
		return
	}
	defer engine.Close()

	// Synthesize a second of 440 Hz as the "decoded" track.
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / 44100))
	}

	a := engine.Analyze("track-a", samples, 44100)
	fmt.Printf("key: %s\n", a.Key)
	fmt.Printf("tempo: %.0f BPM\n", a.Tempo)

	if err := engine.Crossfade("track-a", "track-b"); err != nil {
		fmt.Println("crossfade error:", err)
		return
	}

	// From here the player calls engine.Fader.Tick() once per frame
	// until OnComplete fires with "track-b".
	st := engine.Fader.State()
	fmt.Printf("fading: %v (%s -> %s)\n", st.IsActive, st.FromTrack, st.ToTrack)

	// Output:
	// key: A major
	// tempo: 120 BPM
	// fading: true (track-a -> track-b)
}
