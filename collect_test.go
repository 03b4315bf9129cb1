// SPDX-License-Identifier: EPL-2.0

package crossmix

import (
	"math"
	"testing"

	"github.com/stemstation/crossmix/analysis"
	"github.com/stemstation/crossmix/internal/audiotest"
)

func TestCollectMono_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 4000, 0.5)

	samples, rate, err := CollectMono(src, 0, 0)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	if len(samples) != 4000 {
		t.Errorf("len(samples) = %d, want 4000", len(samples))
	}
	for i, s := range samples {
		if s != 0.5 {
			t.Fatalf("samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCollectMono_DownmixesStereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 1000, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.8
	})

	samples, _, err := CollectMono(src, 0, 0)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if len(samples) != 1000 {
		t.Fatalf("len(samples) = %d, want 1000", len(samples))
	}
	if got := float64(samples[0]); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("downmixed sample = %v, want 0.5", got)
	}
}

func TestCollectMono_Resamples(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 44100, 440)

	samples, rate, err := CollectMono(src, 16000, 0)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if rate != 16000 {
		t.Errorf("rate = %d, want 16000", rate)
	}
	// One second in, one second out, give or take interpolation edges.
	if len(samples) < 15800 || len(samples) > 16200 {
		t.Errorf("len(samples) = %d, want ≈16000", len(samples))
	}
}

func TestCollectMono_CapsAtMaxSeconds(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 80000, 0.1) // 10 seconds

	samples, _, err := CollectMono(src, 0, 2)
	if err != nil {
		t.Fatalf("CollectMono() error = %v", err)
	}
	if len(samples) != 16000 {
		t.Errorf("len(samples) = %d, want capped 16000", len(samples))
	}
}

func TestAnalyzeSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 2*44100, 440)

	a, err := AnalyzeSource(src, analysis.DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeSource() error = %v", err)
	}
	if a.Key != "A major" {
		t.Errorf("Key = %q, want \"A major\"", a.Key)
	}
	if math.Abs(a.AverageRMS-1/math.Sqrt2) > 0.01 {
		t.Errorf("AverageRMS = %v, want ≈%v", a.AverageRMS, 1/math.Sqrt2)
	}
}
