// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"fmt"
	"io"

	"github.com/ik5/audiowm/audio"
	"github.com/thesyncim/gopus"
)

// opusSource decodes this package's Opus container one packet at a
// time and serves samples from a leftover buffer, since a decoded
// frame's size rarely matches the caller's ReadSamples buffer.
type opusSource struct {
	r          io.Reader
	dec        *gopus.Decoder
	sampleRate int
	channels   int
	frameSize  int
	frameBuf   []float32 // scratch for one decoded frame
	leftover   []float32 // decoded samples not yet returned to the caller
	eof        bool
}

func (s *opusSource) SampleRate() int { return s.sampleRate }
func (s *opusSource) Channels() int   { return s.channels }
func (s *opusSource) Close() error    { return nil }
func (s *opusSource) BufSize() int    { return s.frameSize * s.channels }

func (s *opusSource) ReadSamples(dst []float32) (int, error) {
	if len(s.leftover) == 0 && !s.eof {
		if err := s.decodeNextFrame(); err != nil {
			return 0, err
		}
	}
	if len(s.leftover) == 0 {
		return 0, io.EOF
	}

	n := copy(dst, s.leftover)
	s.leftover = s.leftover[n:]
	return n, nil
}

func (s *opusSource) decodeNextFrame() error {
	packet, err := readPacket(s.r)
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return err
	}

	n, err := s.dec.Decode(packet, s.frameBuf)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	s.leftover = s.frameBuf[:n*s.channels]
	return nil
}

// Decoder reads this package's Opus container (see container.go) back
// into an audio.Source, decoding each framed packet through gopus.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	dec, err := gopus.NewDecoder(hdr.sampleRate, hdr.channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &opusSource{
		r:          r,
		dec:        dec,
		sampleRate: hdr.sampleRate,
		channels:   hdr.channels,
		frameSize:  hdr.frameSize,
		frameBuf:   make([]float32, hdr.frameSize*hdr.channels),
	}, nil
}
