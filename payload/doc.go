// SPDX-License-Identifier: EPL-2.0

// Package payload assembles and recovers application messages from the
// soft correlation stream produced by package watermark.
//
// The core codec in package watermark only knows about fixed-length bit
// positions; it has no notion of framing, error correction, or voting
// across repetitions. This package supplies that layer: Frame encodes a
// message into a self-describing, Reed-Solomon-protected bit sequence
// sized to repeat within a carrier bank of a given period; Vote folds a
// block-correlation stream from multiple repetitions down to one soft
// decision per bit position; Unframe decodes that folded bitstream back
// into the original message, using per-bit confidence to decide which
// Reed-Solomon shards to treat as erased rather than trust blindly.
package payload
