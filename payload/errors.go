// SPDX-License-Identifier: EPL-2.0

package payload

import "errors"

var (
	// ErrNoWatermark is returned by Unframe when the sync word is absent,
	// meaning the input likely never carried a frame at all.
	ErrNoWatermark = errors.New("payload: sync word not found")

	// ErrUnrecoverable is returned by Unframe when a sync word was found
	// but too many shards were erased or corrupted for Reed-Solomon to
	// reconstruct the body, or the reconstructed body fails its checksum.
	ErrUnrecoverable = errors.New("payload: frame present but unrecoverable")

	// ErrMessageTooLong is returned by Frame when the message, once
	// Reed-Solomon encoded, does not fit within one repeat of cfg.TotalBits.
	ErrMessageTooLong = errors.New("payload: message too long for frame configuration")

	ErrInvalidFrameConfig = errors.New("payload: invalid frame configuration")
)
