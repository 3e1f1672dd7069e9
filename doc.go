// SPDX-License-Identifier: EPL-2.0

// Package audiowm embeds and extracts an inaudible spread-spectrum
// watermark in stereo PCM audio.
//
// A watermark is a fixed bitstream (the payload) that is repeatedly
// modulated into the audio waveform using a secret-derived pseudo-noise
// carrier, such that the embedded audio sounds identical to the original
// but a decoder holding the same secret can recover the payload — even
// after the audio has been re-encoded or mixed with noise. Extraction
// reads blocks starting at the first sample of the buffer; it does not
// search for a time offset.
//
// # Supported input
//
// Audio can be loaded from any of:
//   - WAV (32-bit IEEE float) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - Opus via formats/opus
//
// Each decoder returns an audio.Source; LoadStereoFloat32 drains any
// Source into the interleaved stereo float32 buffer the codec expects.
//
// # Quick start
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("input.wav")
//	src, _ := decoder.Decode(file)
//
//	samples, rate, _ := audiowm.LoadStereoFloat32(src, 4096)
//
//	bits, period, _ := payload.Frame([]byte("hello"), payload.DefaultFrameConfig())
//	out, _ := watermark.EmbedWithSecret(samples, bits, []byte("secret"), watermark.Options{
//		HopSize: 1024,
//	})
//
// # Core codec
//
// The watermark package implements the spread-spectrum codec itself:
// deterministic PN carrier generation (CarrierBank), adaptive additive
// embedding (Embed), and correlation-based extraction (Extract). It has
// no knowledge of payload framing, error correction, or voting across
// repetitions — that is the payload package's job, by design: it lets
// callers experiment with soft decoders without re-running signal
// processing.
//
// # Ambient infrastructure
//
// keystore persists named secrets at rest; metrics instruments embed and
// extract calls for Prometheus; config loads operator settings via Viper.
// None of these are dependencies of the core codec — watermark.Embed and
// watermark.Extract remain pure functions of their parameters.
package audiowm
