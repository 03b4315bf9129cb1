// SPDX-License-Identifier: EPL-2.0

// Package crossmix is a track-analysis and crossfade-mixing engine for Go
// audio players.
//
// It analyzes decoded PCM buffers into structural and perceptual features
// (intro/outro boundaries, trailing silence, loudness, spectral centroid,
// tempo, key, energy) and drives a two-path gain-mixing graph that
// performs time-bounded, curve-shaped crossfades between the playing and
// the incoming track, optionally tuned by those features.
//
// # Quick start
//
//	engine, _ := crossmix.NewEngine(44100,
//	    fade.DefaultCrossfadeSettings(), fade.DefaultGaplessSettings())
//	defer engine.Close()
//
//	// Decode a track (formats/wav, formats/mp3, ...) and analyze it.
//	samples, rate, _ := crossmix.CollectMono(src, 0, 0)
//	engine.Analyze("track-a", samples, rate)
//
//	// Route sources and fade.
//	out, _ := engine.ConnectCurrentTrack(currentSrc)
//	engine.ConnectNextTrack(nextSrc)
//	engine.Crossfade("track-a", "track-b")
//	// call engine.Fader.Tick() once per frame; route out to the device
//
// # Architecture
//
// The subpackages layer bottom-up:
//   - audio: the Source interface, resampler, mono mixer and decoder
//     registry — the narrow seam decoded PCM enters through.
//   - analysis: pure, deterministic feature extraction plus a cache.
//   - graph: the two-path EQ→gain→analyser mixing graph.
//   - fade: crossfade curves, settings and the tick-driven scheduler.
//   - formats: wav and mp3 decoders producing audio.Source.
//   - store: optional sqlite persistence for computed analyses.
//
// Decoding, queueing, transport and rendering stay outside this module;
// the engine consumes sources and exposes a source, nothing more.
package crossmix
