// SPDX-License-Identifier: EPL-2.0

// Package keystore persists named secrets at rest, so a long-running
// embed/extract service does not need the raw watermark secret
// re-supplied on every call.
//
// Secrets are stored in a go.etcd.io/bbolt database, one bucket holding
// one encrypted record per name. Each record is encrypted with AES-GCM
// under a key derived from an operator-supplied passphrase via
// golang.org/x/crypto/pbkdf2 and a per-record random salt, so two
// secrets in the same store never share a key even though they share a
// passphrase.
//
// This package is ambient infrastructure: the watermark and payload
// packages never import it, and remain pure functions of the secret
// bytes a caller supplies directly.
//
//	store, err := keystore.Open("secrets.db", []byte("operator passphrase"))
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//
//	err = store.Put("podcast-2026", []byte("correct horse battery staple"))
//	rec, err := store.Get("podcast-2026")
//	// rec.Secret == []byte("correct horse battery staple")
package keystore
