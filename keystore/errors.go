// SPDX-License-Identifier: EPL-2.0

package keystore

import "errors"

var (
	// ErrNotFound is returned by Get and Delete when no secret is
	// stored under the given name.
	ErrNotFound = errors.New("keystore: secret not found")

	// ErrRecordTooShort is returned when a stored record is shorter
	// than the salt and nonce it must carry; it indicates a corrupted
	// database entry, not a wrong passphrase.
	ErrRecordTooShort = errors.New("keystore: stored record truncated")
)
