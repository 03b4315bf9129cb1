// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ResampleToMono16 drains src through the resample-then-downmix pipeline
// and collects the result as 16-bit PCM at targetRate. It backs the
// engine's WAV export path; for streaming use compose NewResampler and
// NewMonoMixer directly.
//
// bufferSize is the read chunk in samples (4096 is a sensible default).
// Samples outside [-1, 1] are clamped during conversion.
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	resampler := NewResampler(src, targetRate)
	mono := NewMonoMixer(resampler)

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// float32ToInt16 clamps to [-1, 1] and scales to the int16 range.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on the positive side so +1.0 cannot overflow.
	return int16(x * 32767.0)
}
