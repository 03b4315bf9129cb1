// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/stemstation/crossmix/internal/audiotest"
)

func TestMonoMixer_StereoAveraging(t *testing.T) {
	t.Parallel()

	// Left 0.8, right 0.2: the downmix must land on the mean, not on
	// either channel.
	src := audiotest.NewMockSource(44100, 2, 200, func(_, channel int) float32 {
		if channel == 0 {
			return 0.8
		}
		return 0.2
	})
	mixer := NewMonoMixer(src)

	if got := mixer.Channels(); got != 1 {
		t.Fatalf("Channels() = %d, want 1", got)
	}
	if got := mixer.SampleRate(); got != 44100 {
		t.Fatalf("SampleRate() = %d, want 44100", got)
	}

	dst := make([]float32, 100)
	n, err := mixer.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() = %d frames, want 100", n)
	}
	for i, v := range dst[:n] {
		if math.Abs(float64(v)-0.5) > 1e-6 {
			t.Fatalf("frame %d = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(22050, 1, 64, 0.25)
	mixer := NewMonoMixer(src)

	dst := make([]float32, 64)
	n, err := mixer.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 64 {
		t.Fatalf("ReadSamples() = %d, want 64", n)
	}
	for i, v := range dst[:n] {
		if v != 0.25 {
			t.Fatalf("sample %d = %v, want untouched 0.25", i, v)
		}
	}
}

func TestMonoMixer_MultiChannelAveraging(t *testing.T) {
	t.Parallel()

	// Three channels carrying 0.3, 0.6 and 0.9 average to 0.6 through
	// the generic path.
	src := audiotest.NewMockSource(48000, 3, 90, func(_, channel int) float32 {
		return 0.3 * float32(channel+1)
	})
	mixer := NewMonoMixer(src)

	dst := make([]float32, 30)
	n, err := mixer.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 30 {
		t.Fatalf("ReadSamples() = %d frames, want 30", n)
	}
	for i, v := range dst[:n] {
		if math.Abs(float64(v)-0.6) > 1e-6 {
			t.Fatalf("frame %d = %v, want 0.6", i, v)
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(44100, 2, 100))

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Fatalf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_ReportsFrames(t *testing.T) {
	t.Parallel()

	// 10 stereo frames left in the source: asking for 32 mono frames
	// must return 10, then EOF.
	src := audiotest.NewSilentSource(44100, 2, 10)
	mixer := NewMonoMixer(src)

	dst := make([]float32, 32)
	n, err := mixer.ReadSamples(dst)
	if n != 10 {
		t.Fatalf("ReadSamples() = %d frames, want 10", n)
	}
	if err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("read past end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(44100, 2, 0))
	if err := mixer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
