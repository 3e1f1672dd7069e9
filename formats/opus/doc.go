// SPDX-License-Identifier: EPL-2.0

// Package opus provides Opus audio encoding and decoding.
//
// This package uses github.com/thesyncim/gopus, a pure-Go Opus codec, to
// encode and decode PCM audio. Unlike formats/mp3, formats/vorbis and
// formats/aiff, which only decode, this package also writes: gopus's
// Encoder lets a caller round-trip audio through a real lossy codec pass,
// which is useful for testing whether a watermark survives re-encoding
// rather than only simulated additive noise.
//
// # Container
//
// gopus encodes and decodes individual Opus packets; it carries no
// opinion about how those packets are framed into a file or stream.
// This package defines its own minimal container (see container.go): a
// small header naming the stream's sample rate, channel count and
// frame size, followed by a sequence of length-prefixed packets. It is
// not Ogg-Opus and is not meant to interoperate with other Opus tools;
// it exists so Encoder's output can be fed straight back into Decoder.
//
// # Encoding
//
//	out, _ := os.Create("audio.awop")
//	enc, err := opus.NewEncoder(out, 48000, 2, gopus.ApplicationAudio)
//	if err != nil {
//	    // Handle error
//	}
//	enc.WriteSamples(samples) // interleaved float32, any length
//	enc.Close()               // flushes a silence-padded final frame
//
// # Decoding
//
//	in, _ := os.Open("audio.awop")
//	decoder := opus.Decoder{}
//	src, err := decoder.Decode(in)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//	- Sample format: float32 in range [-1.0, 1.0]
//	- Channels: whatever the stream was encoded with (1 or 2)
//	- Sample rate: one of 8000, 12000, 16000, 24000, 48000
//
// # Limitations
//
// Packet loss concealment, forward error correction and variable frame
// sizes are gopus features this package does not expose; WriteSamples
// always encodes fixed-size frames at the encoder's configured frame
// size.
package opus
