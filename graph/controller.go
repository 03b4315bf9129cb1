// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"sync"

	"github.com/stemstation/crossmix/audio"
)

// Controller owns the two-lane mixing graph. Exactly two Path instances
// exist for the controller's lifetime; which one is "active" and which is
// "pending" is tracked by a role index that SwapPaths flips in O(1). No
// sources are ever reconnected during a swap.
//
// The controller's master output is itself an audio.Source summing both
// paths, so it plugs into the same pipeline chains as any decoder output.
type Controller struct {
	mtx        sync.Mutex
	sampleRate int
	paths      [2]*Path
	active     int
	masterGain float64
	out        *masterOut
	destroyed  bool
}

// NewController builds a graph for the given output sample rate. The
// active path starts at nominal gain, the pending path silent, so outside
// a crossfade exactly one path is audible.
func NewController(sampleRate int) *Controller {
	c := &Controller{
		sampleRate: sampleRate,
		paths:      [2]*Path{newPath(sampleRate), newPath(sampleRate)},
		masterGain: 1,
	}
	c.paths[0].SetGain(1)
	c.out = &masterOut{ctrl: c, scratch: make([]float32, 4096)}
	return c
}

// ConnectCurrentTrack attaches a decoded source to the active path and
// returns the master output for downstream routing. Sources at a different
// sample rate or channel count are adapted through the standard resampler
// and mono mixer.
func (c *Controller) ConnectCurrentTrack(src audio.Source) (audio.Source, error) {
	return c.connect(src, func() *Path { return c.paths[c.active] })
}

// ConnectNextTrack attaches a decoded source to the pending path and
// returns the master output.
func (c *Controller) ConnectNextTrack(src audio.Source) (audio.Source, error) {
	return c.connect(src, func() *Path { return c.paths[1-c.active] })
}

func (c *Controller) connect(src audio.Source, pick func() *Path) (audio.Source, error) {
	if src == nil {
		return nil, ErrNoSource
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.destroyed {
		return nil, ErrDestroyed
	}

	pick().connect(c.adapt(src))
	return c.out, nil
}

// adapt normalizes a source to the graph's mono sample rate.
func (c *Controller) adapt(src audio.Source) audio.Source {
	if src.SampleRate() != c.sampleRate {
		src = audio.NewResampler(src, c.sampleRate)
	}
	if src.Channels() != 1 {
		src = audio.NewMonoMixer(src)
	}
	return src
}

// ActivePath returns the currently audible path.
func (c *Controller) ActivePath() *Path {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.paths[c.active]
}

// PendingPath returns the standby path the next track fades in on.
func (c *Controller) PendingPath() *Path {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.paths[1-c.active]
}

// SwapPaths relabels the pending path as active and vice versa, then
// silences the newly-pending slot (gain 0, EQ flat). Audio connections do
// not move.
func (c *Controller) SwapPaths() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.destroyed {
		return ErrDestroyed
	}

	c.active = 1 - c.active
	c.paths[1-c.active].zero()
	return nil
}

// Taps exposes both paths' analyser taps, active first, for an external
// visualizer. Reading a tap never mutates the graph.
func (c *Controller) Taps() (active, pending *Tap, err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.destroyed {
		return nil, nil, ErrDestroyed
	}

	return c.paths[c.active].Tap(), c.paths[1-c.active].Tap(), nil
}

// SetMasterGain sets the shared output gain applied after both paths sum.
func (c *Controller) SetMasterGain(gain float64) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.destroyed {
		return ErrDestroyed
	}

	c.masterGain = gain
	return nil
}

// MasterGain returns the shared output gain.
func (c *Controller) MasterGain() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.masterGain
}

// SampleRate returns the graph's output sample rate.
func (c *Controller) SampleRate() int { return c.sampleRate }

// Output returns the master output source without connecting anything.
func (c *Controller) Output() audio.Source { return c.out }

// Destroyed reports whether Destroy has been called.
func (c *Controller) Destroyed() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.destroyed
}

// Destroy detaches both paths and marks the graph unusable. It does not
// close the attached sources; the player owns them. Calling Destroy more
// than once is a no-op.
func (c *Controller) Destroy() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.destroyed {
		return
	}
	c.destroyed = true
	for _, p := range c.paths {
		p.disconnect()
	}
}

// masterOut is the graph's summed output. It always produces a full
// buffer: paths without data contribute silence, so downstream consumers
// see an uninterrupted stream even between tracks.
type masterOut struct {
	ctrl    *Controller
	scratch []float32
}

func (m *masterOut) SampleRate() int { return m.ctrl.sampleRate }
func (m *masterOut) Channels() int   { return 1 }
func (m *masterOut) BufSize() int    { return cap(m.scratch) }
func (m *masterOut) Close() error    { return nil }

func (m *masterOut) ReadSamples(dst []float32) (int, error) {
	m.ctrl.mtx.Lock()
	if m.ctrl.destroyed {
		m.ctrl.mtx.Unlock()
		return 0, ErrDestroyed
	}
	paths := m.ctrl.paths
	master := m.ctrl.masterGain
	m.ctrl.mtx.Unlock()

	if len(dst) > len(m.scratch) {
		m.scratch = make([]float32, len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}
	for _, p := range paths {
		if err := p.mixInto(dst, m.scratch); err != nil {
			return 0, err
		}
	}

	if master != 1 {
		for i := range dst {
			dst[i] *= float32(master)
		}
	}
	return len(dst), nil
}
