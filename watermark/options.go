// SPDX-License-Identifier: EPL-2.0

package watermark

// DefaultBaseStrength is the default additive embedding strength used when
// Options.BaseStrength is left at zero: 0.7% of full scale, gentle but
// detectable.
const DefaultBaseStrength = 0.007

// Options carries the parameters shared by Embed and Extract.
type Options struct {
	// HopSize sets the block length: BlockLen = HopSize * 4.
	HopSize int

	// BaseStrength scales the adaptive embedding gain. Embed only; a
	// zero value defaults to DefaultBaseStrength. Extract ignores this
	// field entirely — it is accepted on the shared Options type only
	// for symmetry with callers that keep one settings struct for both
	// directions.
	BaseStrength float64

	// RemovePayload, if non-empty, is an old watermark to cancel while
	// embedding the new payload (re-signing). Embed only.
	RemovePayload []byte
}

func (o Options) blockLen() int { return o.HopSize * 4 }

func (o Options) baseStrength() float64 {
	if o.BaseStrength == 0 {
		return DefaultBaseStrength
	}
	return o.BaseStrength
}
