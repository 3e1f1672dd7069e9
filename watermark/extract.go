// SPDX-License-Identifier: EPL-2.0

package watermark

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// silentEnergyFloor is the signal-energy threshold below which a block is
// considered silent: it contributes zero normalized correlation and zero
// confidence, rather than an error.
const silentEnergyFloor = 1e-20

// Result is the output of Extract: one soft value per analyzed block, plus
// a derived hard-bit stream and an overall confidence estimate.
//
// BandAgreement is carried only for API symmetry with the unimplemented
// Fourier-domain path; it is always 1.0 here.
type Result struct {
	Correlations   []float32
	HardBits       []byte
	Confidence     float64
	BandAgreement  float64
	BlocksAnalyzed uint64
}

// Extract cross-correlates the mono downmix of samplesLR against bank's
// carriers, one block at a time, and returns one soft value per block. It
// performs no voting, synchronization, or decoding of those values into a
// payload — that is the payload package's responsibility by design, so
// callers can experiment with soft decoders without re-running signal
// processing.
func Extract(samplesLR []float32, bank *CarrierBank, _ Options) (Result, error) {
	if len(samplesLR)%2 != 0 {
		return Result{}, ErrOddSampleCount
	}

	l := bank.BlockLen()
	totalFrames := len(samplesLR) / 2
	numBlocks := blockCount(totalFrames, l)
	p := bank.Len()

	correlations := make([]float32, numBlocks)
	confidences := make([]float64, numBlocks)

	var g errgroup.Group
	for k := range numBlocks {
		g.Go(func() error {
			corr, conf := extractBlock(samplesLR, k, l, bank.At(k%p))
			correlations[k] = corr
			confidences[k] = conf
			return nil
		})
	}
	_ = g.Wait() // extractBlock cannot fail; each goroutine writes a disjoint index.

	hardBits := make([]byte, numBlocks)
	var confSum float64
	for k, c := range correlations {
		if c > 0 {
			hardBits[k] = 1
		}
		confSum += confidences[k]
	}

	var meanConf float64
	if numBlocks > 0 {
		meanConf = confSum / float64(numBlocks)
	}

	return Result{
		Correlations:   correlations,
		HardBits:       hardBits,
		Confidence:     meanConf,
		BandAgreement:  1.0,
		BlocksAnalyzed: uint64(numBlocks),
	}, nil
}

func extractBlock(lr []float32, k, l int, carrier []float64) (normalizedCorr float32, confidence float64) {
	frameStart := k * l
	sampleStart := frameStart * 2

	var corr, sigEnergy, pnEnergy float64
	for i := range l {
		idx := sampleStart + i*2
		mono := (float64(lr[idx]) + float64(lr[idx+1])) / 2
		c := carrier[i]

		corr += mono * c
		sigEnergy += mono * mono
		pnEnergy += c * c
	}

	if sigEnergy > silentEnergyFloor {
		normalizedCorr = float32(corr / math.Sqrt(sigEnergy))
	}

	if sigEnergy > silentEnergyFloor && pnEnergy > silentEnergyFloor {
		confidence = clamp(math.Abs(corr)/math.Sqrt(sigEnergy*pnEnergy), 0, 1)
	}

	return normalizedCorr, confidence
}
