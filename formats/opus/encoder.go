// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"fmt"
	"io"

	"github.com/thesyncim/gopus"
)

// Encoder lossily compresses an interleaved float32 PCM stream into this
// package's Opus container, one fixed-size frame at a time.
//
// Encoder is not safe for concurrent use, matching gopus.Encoder's own
// contract.
type Encoder struct {
	w         io.Writer
	enc       *gopus.Encoder
	channels  int
	frameSize int
	pending   []float32 // samples accumulated toward the next full frame
	data      []byte    // scratch packet buffer, reused across Encode calls
}

// NewEncoder creates an Encoder and writes the container header to w.
//
// sampleRate must be one of 8000, 12000, 16000, 24000, 48000 and
// channels must be 1 or 2, per gopus's own constraints.
func NewEncoder(w io.Writer, sampleRate, channels int, application gopus.Application) (*Encoder, error) {
	enc, err := gopus.NewEncoder(sampleRate, channels, application)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	e := &Encoder{
		w:         w,
		enc:       enc,
		channels:  channels,
		frameSize: enc.FrameSize(),
		data:      make([]byte, 4000),
	}

	if err := writeHeader(w, streamHeader{
		sampleRate: enc.SampleRate(),
		channels:   channels,
		frameSize:  e.frameSize,
	}); err != nil {
		return nil, err
	}
	return e, nil
}

// WriteSamples encodes pcm (interleaved, native channel count) in
// frameSize-sample chunks, buffering any remainder across calls.
func (e *Encoder) WriteSamples(pcm []float32) error {
	e.pending = append(e.pending, pcm...)
	frameLen := e.frameSize * e.channels

	for len(e.pending) >= frameLen {
		if err := e.encodeFrame(e.pending[:frameLen]); err != nil {
			return err
		}
		e.pending = e.pending[frameLen:]
	}
	return nil
}

func (e *Encoder) encodeFrame(frame []float32) error {
	n, err := e.enc.Encode(frame, e.data)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	// n == 0 means DTX suppressed this frame as silence; still frame it
	// so the decoder's packet count matches the caller's sample count.
	return writePacket(e.w, e.data[:n])
}

// Close flushes any samples short of a full frame, padding with silence,
// so the Opus frame grid stays aligned with what was actually written.
func (e *Encoder) Close() error {
	if len(e.pending) == 0 {
		return nil
	}

	frameLen := e.frameSize * e.channels
	padded := make([]float32, frameLen)
	copy(padded, e.pending)
	e.pending = nil

	return e.encodeFrame(padded)
}
