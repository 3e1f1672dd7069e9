// SPDX-License-Identifier: EPL-2.0

package watermark

import (
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
)

// smoothHalfWidth and dcHalfWidth are the box-average window half-widths
// used by the low-pass and DC-removal passes. Box width is 2*half+1:
// 65 samples for smoothing, 513 for DC removal. Both kernels use
// actual-count divisors near the edges (asymmetric, not zero-padded),
// and must match bit-for-bit on embed and extract.
const (
	smoothHalfWidth = 32
	dcHalfWidth     = 256
)

// minCarrierEnergy guards the energy-normalization divide-by-near-zero
// case; below this RMS, normalization is skipped and the carrier is used
// as-is.
const minCarrierEnergy = 1e-10

var (
	// ErrInvalidBlockLength is returned when a CarrierBank is requested
	// with a non-positive block length.
	ErrInvalidBlockLength = errors.New("watermark: block length must be positive")
	// ErrInvalidPayloadLength is returned when a CarrierBank is
	// requested with a non-positive payload length.
	ErrInvalidPayloadLength = errors.New("watermark: payload length must be positive")
)

// CarrierBank holds one shaped PN carrier per payload-bit position, all
// derived deterministically from a secret. Carriers are generated once
// and shared read-only across every block that shares their position.
type CarrierBank struct {
	carriers [][]float64
	blockLen int
}

// NewCarrierBank generates the full bank of payloadLen carriers, each
// blockLen samples long, for secret. Carrier generation is parallelized
// across positions (each position depends only on secret, its own index,
// and blockLen), but the result is bit-identical to sequential generation.
func NewCarrierBank(secret []byte, payloadLen, blockLen int) (*CarrierBank, error) {
	if blockLen <= 0 {
		return nil, ErrInvalidBlockLength
	}
	if payloadLen <= 0 {
		return nil, ErrInvalidPayloadLength
	}

	baseSeed := HashSecret(secret)
	carriers := make([][]float64, payloadLen)

	var g errgroup.Group
	for position := range payloadLen {
		g.Go(func() error {
			carriers[position] = generateCarrier(baseSeed, position, blockLen)
			return nil
		})
	}
	_ = g.Wait() // generateCarrier is total; it never returns an error.

	return &CarrierBank{carriers: carriers, blockLen: blockLen}, nil
}

// Len returns the number of carriers (the payload length this bank was
// built for).
func (b *CarrierBank) Len() int { return len(b.carriers) }

// BlockLen returns the per-carrier sample length L.
func (b *CarrierBank) BlockLen() int { return b.blockLen }

// At returns the carrier for payload position p. The caller must not
// mutate the returned slice — it is shared across every block at that
// position.
func (b *CarrierBank) At(p int) []float64 { return b.carriers[p%len(b.carriers)] }

// generateCarrier derives one shaped carrier: raw PN → low-pass →
// DC-removal → energy-normalize → Hann window. The order is fixed;
// changing it changes every bit.
func generateCarrier(baseSeed uint64, position, length int) []float64 {
	prng := NewKeyedPrng(positionSeed(baseSeed, position))

	raw := make([]float64, length)
	for i := range raw {
		raw[i] = 2*prng.NextF64() - 1
	}

	smoothed := boxAverage(raw, smoothHalfWidth)
	dcRemoved := subtractLocalMean(smoothed, dcHalfWidth)
	normalized := energyNormalize(dcRemoved)
	return applyHannWindow(normalized)
}

// boxAverage replaces each sample with the mean of the window
// [i-halfWidth, i+halfWidth], clamped to valid indices, dividing by the
// actual in-range count rather than the nominal window width.
func boxAverage(x []float64, halfWidth int) []float64 {
	n := len(x)
	out := make([]float64, n)

	for i := range x {
		lo := max(i-halfWidth, 0)
		hi := min(i+halfWidth, n-1)

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += x[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}

	return out
}

// subtractLocalMean subtracts, from each sample of a snapshot of x, the
// local mean over the same clamped window boxAverage uses. Operating
// against a snapshot (x itself, read-only) rather than updating in place
// is required: otherwise earlier subtractions would bleed into later
// local-mean windows.
func subtractLocalMean(x []float64, halfWidth int) []float64 {
	n := len(x)
	out := make([]float64, n)

	for i := range x {
		lo := max(i-halfWidth, 0)
		hi := min(i+halfWidth, n-1)

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += x[j]
		}
		mean := sum / float64(hi-lo+1)
		out[i] = x[i] - mean
	}

	return out
}

// energyNormalize scales x so mean(x^2) ≈ 1, unless x's RMS is too small
// to normalize safely, in which case x is returned unchanged.
func energyNormalize(x []float64) []float64 {
	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(len(x)))

	out := make([]float64, len(x))
	if rms <= minCarrierEnergy {
		copy(out, x)
		return out
	}

	for i, v := range x {
		out[i] = v / rms
	}
	return out
}

// applyHannWindow tapers x to zero at both ends so abutting blocks don't
// create discontinuities.
func applyHannWindow(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)

	if n == 1 {
		out[0] = 0
		return out
	}

	for i, v := range x {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		out[i] = v * w
	}
	return out
}
