// SPDX-License-Identifier: EPL-2.0

package watermark

// blockIterator enumerates non-overlapping block starts 0, L, 2L, ... over
// totalSamples, dropping a short tail. Embed and Extract must walk blocks
// identically; both size their block loops with blockCount, which counts
// the same blocks this iterator yields.
type blockIterator struct {
	blockLen     int
	totalSamples int
	next         int
}

func newBlockIterator(totalSamples, blockLen int) *blockIterator {
	return &blockIterator{blockLen: blockLen, totalSamples: totalSamples}
}

// blockCount returns how many full blocks fit in totalSamples.
func blockCount(totalSamples, blockLen int) int {
	if blockLen <= 0 {
		return 0
	}
	return totalSamples / blockLen
}

// Next returns the sample offset of the next block and true, or (0, false)
// once fewer than blockLen samples remain.
func (it *blockIterator) Next() (start int, ok bool) {
	if it.next+it.blockLen > it.totalSamples {
		return 0, false
	}
	start = it.next
	it.next += it.blockLen
	return start, true
}
