// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audiowm/audio"
)

const (
	audioFormatIEEEFloat = 3
	bitsPerSampleFloat32 = 32
)

// wavSource streams a 32-bit IEEE-float data chunk as interleaved float32.
type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	remaining  int64 // bytes of data chunk left to read, or -1 if unknown
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 4 } // sample capacity, not bytes
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 4
	if s.remaining >= 0 && int64(want) > s.remaining {
		want = int(s.remaining)
	}
	if want == 0 {
		return 0, io.EOF
	}

	if len(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := io.ReadFull(s.r, s.buf[:want])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	if s.remaining >= 0 {
		s.remaining -= int64(n)
	}

	samples := n / 4
	for i := range samples {
		bits := binary.LittleEndian.Uint32(s.buf[4*i : 4*i+4])
		dst[i] = math.Float32frombits(bits)
	}

	if samples < len(dst) {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads 32-bit IEEE-float RIFF/WAVE streams, per the external
// WAV contract: fmt audio-format tag 3, any channel count, any sample
// rate. It tolerates trailing bytes in the fmt chunk and skips non-data
// chunks (LIST, fact, and similar) until the data chunk is found.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riffHeader [12]byte
	if _, err := io.ReadFull(r, riffHeader[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var sampleRate, channels int
	var sawFmt bool

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		id := string(chunkHeader[0:4])
		size := int64(binary.LittleEndian.Uint32(chunkHeader[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			// Trailing bytes beyond the canonical 16 (e.g. cbSize, or a
			// WAVE_FORMAT_EXTENSIBLE tail) are tolerated and ignored.
			audioFormat := binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample := int(binary.LittleEndian.Uint16(body[14:16]))

			if audioFormat != audioFormatIEEEFloat || bitsPerSample != bitsPerSampleFloat32 {
				return nil, ErrOnlyFloatWavSupported
			}
			sawFmt = true

		case "data":
			if !sawFmt {
				return nil, ErrUnsupportedWavLayout
			}
			return &wavSource{
				r:          r,
				sampleRate: sampleRate,
				channels:   channels,
				remaining:  size,
				buf:        make([]byte, 4096),
			}, nil

		default:
			if _, err := io.CopyN(io.Discard, r, size); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}

		// RIFF chunks are word-aligned; skip the pad byte on odd sizes.
		if size%2 != 0 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}
	}
}
