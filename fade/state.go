// SPDX-License-Identifier: EPL-2.0

package fade

import "time"

// State is a snapshot of the scheduler's crossfade machine. While a fade
// is active Progress is non-decreasing; on completion or stop the state
// resets to the zero value.
type State struct {
	IsActive  bool
	Progress  float64
	FromTrack string
	ToTrack   string
	StartTime time.Time
	Duration  float64
	Curve     Curve
}
