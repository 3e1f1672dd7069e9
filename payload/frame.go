// SPDX-License-Identifier: EPL-2.0

package payload

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/ik5/audiowm/watermark"
	"github.com/klauspost/reedsolomon"
)

const (
	headerSyncWordLen = 8
	headerLengthLen   = 2
	headerCRCLen      = 4
	headerLen         = headerSyncWordLen + headerLengthLen + headerCRCLen
)

// syncWordSeed is derived from a fixed public string, not a caller secret,
// so a decoder can locate frame boundaries before it knows which secret
// produced the carriers that carry them.
var syncWordSeed = watermark.HashSecret([]byte("audiowm-frame-sync"))

func syncWordBytes() []byte {
	b := make([]byte, headerSyncWordLen)
	binary.BigEndian.PutUint64(b, syncWordSeed)
	return b
}

// FrameConfig controls how Frame lays a message out across a fixed-size
// bit budget.
type FrameConfig struct {
	// TotalBits is the nominal frame period budget; Frame repeats the
	// framed message as many whole times as fit within it.
	TotalBits int

	// DataShards and ParityShards parameterize the Reed-Solomon code
	// protecting the message body.
	DataShards   int
	ParityShards int

	// MinShardConfidence is the average per-bit confidence below which
	// Unframe treats a shard as erased rather than trusting it.
	MinShardConfidence float64
}

// DefaultFrameConfig mirrors the 464-bit frame budget the original
// watermark.cc comment derives as 64 (sync) + 16 (length) + (16+32)*8
// (repeated, error-corrected body).
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		TotalBits:          464,
		DataShards:         4,
		ParityShards:       2,
		MinShardConfidence: 0.6,
	}
}

func (c FrameConfig) validate() error {
	if c.TotalBits <= 0 || c.DataShards <= 0 || c.ParityShards < 0 {
		return ErrInvalidFrameConfig
	}
	return nil
}

// Frame builds a Reed-Solomon-protected, self-synchronizing bit sequence
// from message and repeats it as many whole times as fit within
// cfg.TotalBits. It returns the full repeated bitstream and period, the
// bit length of a single repeat. Callers size a watermark.CarrierBank to
// period and embed the full returned bitstream through it; the carrier
// bank's own modular indexing reuses each of the period carriers across
// repeats.
func Frame(message []byte, cfg FrameConfig) (bits []byte, period int, err error) {
	if err := cfg.validate(); err != nil {
		return nil, 0, err
	}
	if len(message) > 0xFFFF {
		return nil, 0, ErrMessageTooLong
	}

	enc, err := reedsolomon.New(cfg.DataShards, cfg.ParityShards)
	if err != nil {
		return nil, 0, fmt.Errorf("payload: new reed-solomon encoder: %w", err)
	}

	shards, err := enc.Split(message)
	if err != nil {
		return nil, 0, fmt.Errorf("payload: split message into shards: %w", err)
	}
	if err := enc.Encode(shards); err != nil {
		return nil, 0, fmt.Errorf("payload: encode parity shards: %w", err)
	}
	body := bytes.Join(shards, nil)

	header := make([]byte, 0, headerLen)
	header = append(header, syncWordBytes()...)

	var lenBuf [headerLengthLen]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(message)))
	header = append(header, lenBuf[:]...)

	var crcBuf [headerCRCLen]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc32.ChecksumIEEE(message))
	header = append(header, crcBuf[:]...)

	frame := append(header, body...)
	period = len(frame) * 8
	if period > cfg.TotalBits {
		return nil, 0, ErrMessageTooLong
	}

	repeats := cfg.TotalBits / period
	if repeats < 1 {
		repeats = 1
	}

	frameBits := bytesToBits(frame)
	bits = make([]byte, 0, len(frameBits)*repeats)
	for i := 0; i < repeats; i++ {
		bits = append(bits, frameBits...)
	}
	return bits, period, nil
}

// Unframe recovers the original message from a single period of folded
// bits, typically the output of Vote. confidence, if non-nil, must be the
// same length as frameBits and is used to decide which Reed-Solomon
// shards to treat as erased rather than trust outright; pass nil to
// trust every shard.
func Unframe(frameBits []byte, confidence []float64, cfg FrameConfig) (message []byte, err error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(frameBits) < headerLen*8 {
		return nil, ErrNoWatermark
	}

	frameBytes := bitsToBytes(frameBits)
	if !bytes.Equal(frameBytes[:headerSyncWordLen], syncWordBytes()) {
		return nil, ErrNoWatermark
	}

	msgLen := int(binary.BigEndian.Uint16(frameBytes[headerSyncWordLen : headerSyncWordLen+headerLengthLen]))
	wantCRC := binary.BigEndian.Uint32(frameBytes[headerSyncWordLen+headerLengthLen : headerLen])

	total := cfg.DataShards + cfg.ParityShards
	shardSize := (msgLen + cfg.DataShards - 1) / cfg.DataShards
	if shardSize == 0 {
		shardSize = 1
	}
	bodyLen := shardSize * total
	if len(frameBytes) < headerLen+bodyLen {
		return nil, ErrUnrecoverable
	}

	enc, err := reedsolomon.New(cfg.DataShards, cfg.ParityShards)
	if err != nil {
		return nil, fmt.Errorf("payload: new reed-solomon encoder: %w", err)
	}

	shards := make([][]byte, total)
	for i := 0; i < total; i++ {
		start := headerLen + i*shardSize
		if shardConfidence(confidence, i, shardSize) < cfg.MinShardConfidence {
			continue // shards[i] stays nil: erased, reconstructed below
		}
		shard := make([]byte, shardSize)
		copy(shard, frameBytes[start:start+shardSize])
		shards[i] = shard
	}

	if err := enc.Reconstruct(shards); err != nil {
		return nil, ErrUnrecoverable
	}

	var buf bytes.Buffer
	if err := enc.Join(&buf, shards, msgLen); err != nil {
		return nil, ErrUnrecoverable
	}
	message = buf.Bytes()

	if crc32.ChecksumIEEE(message) != wantCRC {
		return nil, ErrUnrecoverable
	}
	return message, nil
}

// shardConfidence averages the per-bit confidence of shard index i's
// bytes, which start at headerLen+i*shardSize within the frame. Returns 1
// (fully trusted) when confidence is nil.
func shardConfidence(confidence []float64, shardIdx, shardSize int) float64 {
	if confidence == nil {
		return 1
	}
	startBit := (headerLen + shardIdx*shardSize) * 8
	endBit := startBit + shardSize*8
	if endBit > len(confidence) {
		endBit = len(confidence)
	}
	if startBit >= endBit {
		return 1
	}
	var sum float64
	for i := startBit; i < endBit; i++ {
		sum += confidence[i]
	}
	return sum / float64(endBit-startBit)
}
