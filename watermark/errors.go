// SPDX-License-Identifier: EPL-2.0

package watermark

import "errors"

var (
	// ErrEmptyPayload is returned when Embed is called with a zero-length
	// payload — there is no bit to select a carrier with.
	ErrEmptyPayload = errors.New("watermark: payload must not be empty")
	// ErrOddSampleCount is returned when an interleaved stereo buffer has
	// an odd number of float32 values.
	ErrOddSampleCount = errors.New("watermark: stereo sample buffer must have an even length")
)
