// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM WAV files for the mixing
// engine. Decoding rides on github.com/go-audio/wav for chunk parsing;
// encoding is a small hand-rolled writer for the engine's mono export.
//
// Decoding produces an audio.Source with float32 samples in [-1, 1]:
//
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//		// errors.Is against ErrNotWavFile, ErrOnlyPCM16bitSupported,
//		// ErrUnsupportedWavLayout or ErrUnsupportedWavChunks
//	}
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Mono and stereo at any sample rate are accepted; anything other than
// uncompressed 16-bit PCM is rejected with a sentinel error.
//
// Encoding writes a complete mono file, header included:
//
//	err := wav.WriteWAV16(out, 44100, pcm16)
//
// WriteWAV16 pairs with audio.ResampleToMono16, which produces the int16
// slice from any Source.
package wav
