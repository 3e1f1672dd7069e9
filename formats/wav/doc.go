// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding for the
// 32-bit IEEE-float RIFF/WAVE format.
//
// # Supported Format
//
//   - RIFF/WAVE, fmt audio-format tag 3 (IEEE float)
//   - 32 bits per sample
//   - Any channel count, any sample rate
//
// 16-bit PCM and other non-float layouts are rejected with
// ErrOnlyFloatWavSupported, since the watermark pipeline this package
// feeds operates on float32 samples throughout and never touches
// quantized PCM.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing interleaved float32
// samples. It tolerates trailing bytes in the fmt chunk (e.g. an
// extensible-format cbSize tail) and skips any non-data chunks (LIST,
// fact, and similar) encountered before the data chunk.
//
// # Writing WAV Files
//
//	err := wav.WriteFloat(file, 44100, 2, samples)
//
// WriteFloat emits a minimal 16-byte fmt chunk and a single data chunk.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid RIFF/WAVE stream
//   - ErrOnlyFloatWavSupported: the fmt chunk names a non-float or
//     non-32-bit layout
//   - ErrUnsupportedWavLayout: the fmt chunk is malformed or absent
//     before the data chunk arrives
package wav
