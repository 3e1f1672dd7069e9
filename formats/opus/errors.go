// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

var (
	// ErrNotOpusStream is returned when the input does not start with
	// this package's container magic.
	ErrNotOpusStream = errors.New("not an audiowm opus stream")

	// ErrUnsupportedOpusVersion is returned when the container's
	// version byte is newer than this package understands.
	ErrUnsupportedOpusVersion = errors.New("unsupported opus stream version")
)
