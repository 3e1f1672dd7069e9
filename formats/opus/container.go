// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"encoding/binary"
	"fmt"
	"io"
)

// gopus encodes and decodes individual Opus packets; it has no opinion
// about how those packets are framed into a byte stream. The examples
// pack carries no Ogg-Opus muxer, so this package defines its own
// minimal container: a fixed header naming the stream's sample rate,
// channel count and frame size, followed by a sequence of
// length-prefixed packets.
const (
	magic         = "AWOP"
	containerVers = 1
	headerLen     = 4 + 1 + 4 + 1 + 4 // magic + version + rate + channels + frameSize
)

type streamHeader struct {
	sampleRate int
	channels   int
	frameSize  int
}

func writeHeader(w io.Writer, h streamHeader) error {
	buf := make([]byte, headerLen)
	copy(buf[0:4], magic)
	buf[4] = containerVers
	binary.LittleEndian.PutUint32(buf[5:9], uint32(h.sampleRate))
	buf[9] = byte(h.channels)
	binary.LittleEndian.PutUint32(buf[10:14], uint32(h.frameSize))

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func readHeader(r io.Reader) (streamHeader, error) {
	buf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return streamHeader{}, fmt.Errorf("%w", err)
	}
	if string(buf[0:4]) != magic {
		return streamHeader{}, ErrNotOpusStream
	}
	if buf[4] != containerVers {
		return streamHeader{}, ErrUnsupportedOpusVersion
	}

	return streamHeader{
		sampleRate: int(binary.LittleEndian.Uint32(buf[5:9])),
		channels:   int(buf[9]),
		frameSize:  int(binary.LittleEndian.Uint32(buf[10:14])),
	}, nil
}

// writePacket frames a single Opus packet with a 2-byte little-endian
// length prefix. Opus packets never approach the uint16 range in
// practice (RFC 6716 bounds them well under 1500 bytes per 20ms frame
// at any sane bitrate), so the prefix never overflows.
func writePacket(w io.Writer, packet []byte) error {
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(packet)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := w.Write(packet); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readPacket reads one length-prefixed packet. io.EOF is returned
// unwrapped when the stream ends cleanly on a length-prefix boundary.
func readPacket(r io.Reader) ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w", err)
	}

	n := binary.LittleEndian.Uint16(lenBuf[:])
	packet := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, packet); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
	return packet, nil
}
