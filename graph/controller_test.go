// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stemstation/crossmix/internal/audiotest"
)

func TestNewController_InitialRoles(t *testing.T) {
	t.Parallel()

	ctrl := NewController(44100)

	if got := ctrl.ActivePath().Gain(); got != 1 {
		t.Errorf("active path gain = %v, want 1", got)
	}
	if got := ctrl.PendingPath().Gain(); got != 0 {
		t.Errorf("pending path gain = %v, want 0", got)
	}
}

func TestController_SwapPaths(t *testing.T) {
	t.Parallel()

	ctrl := NewController(44100)
	active := ctrl.ActivePath()
	pending := ctrl.PendingPath()

	// Simulate a finished crossfade: pending faded up, active faded out.
	active.SetGain(0)
	pending.SetGain(1)
	pending.SetEQGains(EQGains{HighDB: 3})

	if err := ctrl.SwapPaths(); err != nil {
		t.Fatalf("SwapPaths() error = %v", err)
	}

	if ctrl.ActivePath() != pending {
		t.Error("active path did not change after swap")
	}
	if ctrl.PendingPath() != active {
		t.Error("pending path did not change after swap")
	}

	// The newly-pending slot must be silenced with flat EQ.
	if got := ctrl.PendingPath().Gain(); got != 0 {
		t.Errorf("newly-pending gain = %v, want 0", got)
	}
	if got := ctrl.PendingPath().EQGains(); got != (EQGains{}) {
		t.Errorf("newly-pending EQ = %+v, want flat", got)
	}

	// The survivor keeps its state: swap relabels, it does not copy.
	if got := ctrl.ActivePath().Gain(); got != 1 {
		t.Errorf("newly-active gain = %v, want 1", got)
	}
	if got := ctrl.ActivePath().EQGains().HighDB; got != 3 {
		t.Errorf("newly-active high shelf = %v, want 3", got)
	}
}

func TestController_ConnectReturnsMasterOutput(t *testing.T) {
	t.Parallel()

	ctrl := NewController(44100)
	src := audiotest.NewConstantSource(44100, 1, 44100, 0.25)

	out, err := ctrl.ConnectCurrentTrack(src)
	if err != nil {
		t.Fatalf("ConnectCurrentTrack() error = %v", err)
	}
	if out != ctrl.Output() {
		t.Error("ConnectCurrentTrack() did not return the master output")
	}

	out2, err := ctrl.ConnectNextTrack(audiotest.NewSilentSource(44100, 1, 44100))
	if err != nil {
		t.Fatalf("ConnectNextTrack() error = %v", err)
	}
	if out2 != out {
		t.Error("both connects must return the same shared master output")
	}
}

func TestController_MasterMixesBothPaths(t *testing.T) {
	t.Parallel()

	ctrl := NewController(8000)
	if _, err := ctrl.ConnectCurrentTrack(audiotest.NewConstantSource(8000, 1, 8000, 0.5)); err != nil {
		t.Fatal(err)
	}
	if _, err := ctrl.ConnectNextTrack(audiotest.NewConstantSource(8000, 1, 8000, 0.5)); err != nil {
		t.Fatal(err)
	}
	ctrl.ActivePath().SetGain(1)
	ctrl.PendingPath().SetGain(0.5)

	buf := make([]float32, 512)
	n, err := ctrl.Output().ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(buf) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(buf))
	}

	// 0.5*1 + 0.5*0.5 = 0.75 once the EQ settles (flat EQ passes
	// through with only transient error in the first samples).
	got := float64(buf[len(buf)-1])
	if math.Abs(got-0.75) > 0.01 {
		t.Errorf("mixed sample = %v, want ≈0.75", got)
	}
}

func TestController_SilentWithoutSources(t *testing.T) {
	t.Parallel()

	ctrl := NewController(8000)
	buf := make([]float32, 256)

	n, err := ctrl.Output().ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(buf) {
		t.Fatalf("ReadSamples() n = %d, want full buffer", n)
	}
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("buf[%d] = %v, want 0 (silence)", i, s)
		}
	}
}

func TestController_AdaptsStereoSources(t *testing.T) {
	t.Parallel()

	ctrl := NewController(8000)
	stereo := audiotest.NewConstantSource(8000, 2, 8000, 0.5)

	if _, err := ctrl.ConnectCurrentTrack(stereo); err != nil {
		t.Fatalf("ConnectCurrentTrack() error = %v", err)
	}

	buf := make([]float32, 256)
	if _, err := ctrl.Output().ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	got := float64(buf[len(buf)-1])
	if math.Abs(got-0.5) > 0.01 {
		t.Errorf("downmixed sample = %v, want ≈0.5", got)
	}
}

func TestController_Taps(t *testing.T) {
	t.Parallel()

	ctrl := NewController(8000)
	if _, err := ctrl.ConnectCurrentTrack(audiotest.NewConstantSource(8000, 1, 8000, 0.5)); err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 512)
	if _, err := ctrl.Output().ReadSamples(buf); err != nil {
		t.Fatal(err)
	}

	active, pending, err := ctrl.Taps()
	if err != nil {
		t.Fatalf("Taps() error = %v", err)
	}
	if got := active.Samples(); len(got) == 0 {
		t.Error("active tap empty after reading through the graph")
	}
	if got := pending.Samples(); len(got) != 0 {
		t.Errorf("pending tap has %d samples, want 0 (no source)", len(got))
	}
}

func TestController_DestroyIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := NewController(44100)
	ctrl.Destroy()
	ctrl.Destroy() // must not panic or change anything

	if !ctrl.Destroyed() {
		t.Fatal("Destroyed() = false after Destroy")
	}

	if _, err := ctrl.ConnectCurrentTrack(audiotest.NewSilentSource(44100, 1, 10)); !errors.Is(err, ErrDestroyed) {
		t.Errorf("ConnectCurrentTrack() after Destroy error = %v, want ErrDestroyed", err)
	}
	if err := ctrl.SwapPaths(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SwapPaths() after Destroy error = %v, want ErrDestroyed", err)
	}
	if _, _, err := ctrl.Taps(); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Taps() after Destroy error = %v, want ErrDestroyed", err)
	}
}

func TestController_ConnectNilSource(t *testing.T) {
	t.Parallel()

	ctrl := NewController(44100)
	if _, err := ctrl.ConnectCurrentTrack(nil); !errors.Is(err, ErrNoSource) {
		t.Errorf("ConnectCurrentTrack(nil) error = %v, want ErrNoSource", err)
	}
}
