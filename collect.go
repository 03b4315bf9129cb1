// SPDX-License-Identifier: EPL-2.0

package crossmix

import (
	"fmt"
	"io"

	"github.com/stemstation/crossmix/analysis"
	"github.com/stemstation/crossmix/audio"
)

// CollectMono drains a decoded source into a mono float32 buffer suitable
// for analysis.
//
// The pipeline mirrors the playback input chain: multi-channel sources are
// averaged down through MonoMixer, and when targetRate differs from the
// source rate the stream is resampled first. maxSeconds bounds how much
// audio is collected (0 means the whole stream); analysis rarely needs
// more than the head and tail scans cover, and capping the collection
// keeps long tracks from ballooning memory.
//
// Returns the samples, the rate they are at, and any decode error. A
// source that ends early is not an error; io.EOF is consumed.
func CollectMono(src audio.Source, targetRate int, maxSeconds float64) ([]float32, int, error) {
	rate := src.SampleRate()
	if targetRate > 0 && targetRate != rate {
		src = audio.NewResampler(src, targetRate)
		rate = targetRate
	}
	mono := audio.NewMonoMixer(src)

	limit := -1
	if maxSeconds > 0 {
		limit = int(maxSeconds * float64(rate))
	}

	samples := make([]float32, 0, rate) // a second of headroom to start
	buf := make([]float32, 4096)

	for limit < 0 || len(samples) < limit {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			want := n
			if limit >= 0 && len(samples)+want > limit {
				want = limit - len(samples)
			}
			samples = append(samples, buf[:want]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return samples, rate, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return samples, rate, nil
}

// AnalyzeSource runs the full collection and analysis pipeline on a
// decoded source. opts sizes the analyzer windows; see analysis.Options.
func AnalyzeSource(src audio.Source, opts analysis.Options) (analysis.TrackAnalysis, error) {
	samples, rate, err := CollectMono(src, 0, 0)
	if err != nil {
		return analysis.TrackAnalysis{}, err
	}
	return analysis.Analyze(samples, rate, opts), nil
}
