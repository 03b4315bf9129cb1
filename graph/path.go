// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"io"
	"sync"

	"github.com/stemstation/crossmix/audio"
)

// Path is one of the controller's two mixing lanes: a connected source
// flows through a 3-band EQ, a gain stage and an analyser tap. Paths are
// created by the Controller and never copied; the "active"/"pending" roles
// move between the two fixed instances by relabeling.
type Path struct {
	mtx  sync.Mutex
	src  audio.Source
	eq   *threeBandEQ
	gain float64
	tap  Tap
	eof  bool
}

func newPath(sampleRate int) *Path {
	return &Path{
		eq: newThreeBandEQ(sampleRate),
	}
}

// connect attaches a source, replacing any previous one. The previous
// source is not closed; the player owns source lifetimes.
func (p *Path) connect(src audio.Source) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.src = src
	p.eof = false
}

func (p *Path) disconnect() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.src = nil
	p.eof = false
}

// SetGain sets the path's linear gain. During an active crossfade only the
// scheduler may call this.
func (p *Path) SetGain(gain float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.gain = gain
}

// Gain returns the path's current linear gain.
func (p *Path) Gain() float64 {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.gain
}

// SetEQGains sets all three EQ band gains.
func (p *Path) SetEQGains(g EQGains) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.eq.setGains(g)
}

// SetHighShelfDB adjusts only the high-shelf band, used by EQ matching to
// nudge the incoming track's brightness toward the outgoing one.
func (p *Path) SetHighShelfDB(db float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.eq.setHighShelfDB(db)
}

// EQGains returns the current EQ band gains.
func (p *Path) EQGains() EQGains {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.eq.gains
}

// Tap returns the path's analyser tap.
func (p *Path) Tap() *Tap {
	return &p.tap
}

// zero silences the path: gain to 0, EQ flat, filter state cleared. Called
// on the newly-pending slot after a role swap.
func (p *Path) zero() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.gain = 0
	p.eq.reset()
}

// mixInto reads up to len(dst) samples from the path's source, runs them
// through EQ and gain, records them in the tap and adds them into dst.
// A path with no source, an exhausted source, or zero gain still "runs":
// it simply contributes silence.
func (p *Path) mixInto(dst, scratch []float32) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.src == nil || p.eof {
		return nil
	}

	want := len(dst)
	if want > len(scratch) {
		want = len(scratch)
	}

	read := 0
	for read < want {
		n, err := p.src.ReadSamples(scratch[read:want])
		read += n
		if err == io.EOF {
			p.eof = true
			break
		}
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
	}
	if read == 0 {
		return nil
	}

	block := scratch[:read]
	p.eq.process(block)
	for i, s := range block {
		block[i] = s * float32(p.gain)
	}
	p.tap.write(block)

	for i, s := range block {
		dst[i] += s
	}
	return nil
}
