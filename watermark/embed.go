// SPDX-License-Identifier: EPL-2.0

package watermark

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// gainClampMin and gainClampMax bound the adaptive-strength factor applied
// to BaseStrength: 10% of base in silence, 60% of base in loud passages.
// This is the codec's only psychoacoustic proxy — it follows local energy,
// nothing more.
const (
	gainClampMin = 0.1
	gainClampMax = 0.6
	gainSlope    = 4.0
)

// Embed additively modulates payload into samplesLR, an interleaved
// stereo float32 buffer, using bank's carriers. It returns a new buffer
// of the same length; samplesLR is never modified.
//
// Per block k = 0, 1, ... while (k+1)*L <= len(samplesLR)/2, the carrier
// at position k mod len(payload) is added to both channels, signed by
// payload[k mod len(payload)] and scaled by an adaptive gain derived from
// the block's local RMS. If opts.RemovePayload is set, that old
// watermark's contribution at the same position is subtracted first, so
// re-signing equals adding (new - old).
//
// Blocks shorter than L at the tail are dropped, not zero-padded.
func Embed(samplesLR []float32, payload []byte, bank *CarrierBank, opts Options) ([]float32, error) {
	if len(samplesLR)%2 != 0 {
		return nil, ErrOddSampleCount
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	l := bank.BlockLen()
	totalFrames := len(samplesLR) / 2
	numBlocks := blockCount(totalFrames, l)
	strength := opts.baseStrength()

	out := make([]float32, len(samplesLR))
	copy(out, samplesLR)

	var g errgroup.Group
	for k := range numBlocks {
		g.Go(func() error {
			embedBlock(out, k, l, payload, bank, opts.RemovePayload, strength)
			return nil
		})
	}
	_ = g.Wait() // embedBlock cannot fail; blocks write disjoint ranges.

	return out, nil
}

func embedBlock(lr []float32, k, l int, payload []byte, bank *CarrierBank, removePayload []byte, strength float64) {
	frameStart := k * l
	sampleStart := frameStart * 2

	p := k % len(payload)
	carrier := bank.At(p)
	sign := bitSign(payload[p])

	rms := blockRMS(lr, sampleStart, l)
	gain := strength * clamp(rms*gainSlope, gainClampMin, gainClampMax)

	hasRemove := len(removePayload) > 0
	var removeSign float64
	if hasRemove {
		removeSign = bitSign(removePayload[p%len(removePayload)])
	}

	for i := range l {
		delta := carrier[i] * sign * gain
		if hasRemove {
			delta -= carrier[i] * removeSign * gain
		}

		idx := sampleStart + i*2
		lr[idx] = float32(float64(lr[idx]) + delta)
		lr[idx+1] = float32(float64(lr[idx+1]) + delta)
	}
}

// blockRMS computes the RMS of the mono downmix (L+R)/2 over one block.
func blockRMS(lr []float32, sampleStart, l int) float64 {
	var sumSq float64
	for i := range l {
		idx := sampleStart + i*2
		mono := (float64(lr[idx]) + float64(lr[idx+1])) / 2
		sumSq += mono * mono
	}
	return math.Sqrt(sumSq / float64(l))
}

func bitSign(bit byte) float64 {
	if bit == 1 {
		return 1
	}
	return -1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
