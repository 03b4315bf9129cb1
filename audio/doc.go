// SPDX-License-Identifier: EPL-2.0

// Package audio defines the sample-stream substrate the mixing engine is
// built on: the Source interface plus the adapters that normalize
// decoded PCM before it reaches the analyzer or the graph.
//
// A Source delivers interleaved float32 samples in [-1, 1]. Format
// decoders (formats/wav, formats/mp3) produce sources; Resampler and
// MonoMixer wrap them; the mixing graph consumes them on its two paths
// and exposes its summed output as another Source, so a player can treat
// the whole engine as one stream.
//
// The usual preprocessing chain for analysis:
//
//	src, _ := decoder.Decode(file)          // any rate, any channels
//	r := audio.NewResampler(src, 44100)     // graph rate
//	mono := audio.NewMonoMixer(r)           // analyzer wants mono
//
// ResampleToMono16 runs that chain to completion and hands back int16
// PCM, which is what the WAV export path writes.
//
// The Registry maps format keys to decoders so callers can pick a
// decoder by file extension; crossmix.DefaultRegistry pre-registers the
// bundled formats.
package audio
