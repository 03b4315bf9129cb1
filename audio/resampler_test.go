// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/stemstation/crossmix/internal/audiotest"
)

// drain reads src to EOF and returns everything it produced.
func drain(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			return out
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{"track rate down to analysis rate", 44100, 16000},
		{"48k device down to graph rate", 48000, 44100},
		{"low-rate sample up to graph rate", 16000, 44100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// One second of mono input should give about one second out.
			src := audiotest.NewSineSource(tt.srcRate, 1, tt.srcRate, 440)
			out := drain(t, NewResampler(src, tt.dstRate), 4096)

			want := tt.dstRate
			tolerance := tt.dstRate / 20
			if len(out) < want-tolerance || len(out) > want+tolerance {
				t.Errorf("got %d samples, want %d (±%d)", len(out), want, tolerance)
			}
		})
	}
}

func TestResampler_ReportsTargetFormat(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 2, 48000)
	r := NewResampler(src, 44100)

	if got := r.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if got := r.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2 preserved", got)
	}
}

func TestResampler_ConstantSignalPassesThrough(t *testing.T) {
	t.Parallel()

	// A DC signal must survive both the interpolator and the
	// downsampling low-pass unchanged.
	src := audiotest.NewConstantSource(44100, 1, 44100, 0.5)
	out := drain(t, NewResampler(src, 16000), 4096)

	if len(out) == 0 {
		t.Fatal("no output samples")
	}
	for i, s := range out {
		if math.Abs(float64(s)-0.5) > 1e-3 {
			t.Fatalf("out[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestResampler_StereoFramesStayPaired(t *testing.T) {
	t.Parallel()

	// Distinct constants per channel: interpolation between identical
	// values is exact, so any cross-channel bleed shows immediately.
	src := audiotest.NewMockSource(44100, 2, 44100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return 0.75
	})
	out := drain(t, NewResampler(src, 22050), 4096)

	if len(out)%2 != 0 {
		t.Fatalf("odd sample count %d from a stereo stream", len(out))
	}
	for f := 0; f < len(out)/2; f++ {
		l, r := out[2*f], out[2*f+1]
		if math.Abs(float64(l)-0.25) > 1e-3 || math.Abs(float64(r)-0.75) > 1e-3 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, 0.75)", f, l, r)
		}
	}
}

func TestResampler_DstNotFrameAligned(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	r := NewResampler(src, 22050)

	if _, err := r.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples(len 3, stereo) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 0)
	r := NewResampler(src, 16000)

	n, err := r.ReadSamples(make([]float32, 64))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_SineSurvivesDownsampling(t *testing.T) {
	t.Parallel()

	// Not a fidelity benchmark: just check the output still looks like a
	// bounded oscillation rather than garbage or silence.
	src := audiotest.NewSineSource(44100, 1, 44100, 440)
	out := drain(t, NewResampler(src, 16000), 4096)

	var peak float64
	for _, s := range out {
		if a := math.Abs(float64(s)); a > peak {
			peak = a
		}
	}
	if peak < 0.3 || peak > 1.01 {
		t.Errorf("peak = %v, want an audible bounded signal", peak)
	}
}
