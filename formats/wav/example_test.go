// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/stemstation/crossmix/formats/wav"
)

// Example_roundTrip renders PCM to a WAV file and decodes it back.
func Example_roundTrip() {
	samples := []int16{0, 16384, -16384, 0}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 16000, samples); err != nil {
		fmt.Println("write:", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	defer src.Close()

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		fmt.Println("read:", err)
		return
	}

	fmt.Printf("%d Hz, %d samples, second = %.1f\n", src.SampleRate(), n, dst[1])
	// Output:
	// 16000 Hz, 4 samples, second = 0.5
}

// ExampleDecoder_Decode shows the sentinel error for non-WAV input.
func ExampleDecoder_Decode() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("not a riff stream")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("rejected: not a WAV file")
	}
	// Output:
	// rejected: not a WAV file
}
