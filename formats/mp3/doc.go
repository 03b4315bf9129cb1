// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 tracks into the engine's sample stream.
// It wraps github.com/hajimehoshi/go-mp3, converting its byte-oriented
// 16-bit PCM output to float32 samples in [-1, 1].
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//		// not a decodable MPEG stream
//	}
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The output is always stereo at the file's native rate; go-mp3 upmixes
// mono input. Tracks headed for analysis go through audio.NewResampler
// and audio.NewMonoMixer first, the same as every other format.
//
// Decoding only; the engine renders its output as WAV.
package mp3
