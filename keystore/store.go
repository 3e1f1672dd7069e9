// SPDX-License-Identifier: EPL-2.0

package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize      = 16
	nonceSize     = 12
	keySize       = 32 // AES-256
	pbkdf2Iters   = 100_000
	secretsBucket = "secrets"
)

// SecretRecord is a named secret as returned by Get and List. List
// never populates Secret; only Get decrypts it.
type SecretRecord struct {
	Name      string
	Secret    []byte
	CreatedAt time.Time
}

// Store is a bbolt-backed, passphrase-encrypted store of named
// secrets. A Store is safe for concurrent use; bbolt serializes writes
// internally.
type Store struct {
	db         *bolt.DB
	passphrase []byte
}

// Open opens (creating if necessary) a keystore database at path,
// unlocked with passphrase. The passphrase is never written to disk;
// it is combined with a per-record salt at Put and Get time.
func Open(path string, passphrase []byte) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(secretsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w", err)
	}

	return &Store{db: db, passphrase: passphrase}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put encrypts secret under a fresh random salt and nonce and stores it
// as name, overwriting any existing record of the same name.
func (s *Store) Put(name string, secret []byte) error {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("%w", err)
	}

	gcm, err := s.cipherFor(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("%w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, secret, nil)
	record := encodeRecord(salt, nonce, ciphertext, time.Now())

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(secretsBucket)).Put([]byte(name), record)
	})
}

// Get decrypts and returns the secret stored as name. It returns
// ErrNotFound if no such record exists, or a wrapped authentication
// error from crypto/cipher if passphrase does not match the one Put
// was called with.
func (s *Store) Get(name string) (SecretRecord, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(secretsBucket)).Get([]byte(name))
		if v == nil {
			return ErrNotFound
		}
		raw = append(raw, v...)
		return nil
	})
	if err != nil {
		return SecretRecord{}, err
	}

	salt, nonce, ciphertext, createdAt, err := decodeRecord(raw)
	if err != nil {
		return SecretRecord{}, err
	}

	gcm, err := s.cipherFor(salt)
	if err != nil {
		return SecretRecord{}, err
	}

	secret, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return SecretRecord{}, fmt.Errorf("%w", err)
	}

	return SecretRecord{Name: name, Secret: secret, CreatedAt: createdAt}, nil
}

// Delete removes the record stored as name. It returns ErrNotFound if
// no such record exists.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(secretsBucket))
		if b.Get([]byte(name)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(name))
	})
}

// List returns every stored record's name and creation time, without
// decrypting any secret.
func (s *Store) List() ([]SecretRecord, error) {
	var out []SecretRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(secretsBucket))
		return b.ForEach(func(k, v []byte) error {
			_, _, _, createdAt, err := decodeRecord(v)
			if err != nil {
				return err
			}
			out = append(out, SecretRecord{Name: string(k), CreatedAt: createdAt})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) cipherFor(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(s.passphrase, salt, pbkdf2Iters, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return gcm, nil
}

// encodeRecord lays a record out as: salt | nonce | 8-byte big-endian
// unix-nano timestamp | ciphertext.
func encodeRecord(salt, nonce, ciphertext []byte, createdAt time.Time) []byte {
	out := make([]byte, 0, saltSize+nonceSize+8+len(ciphertext))
	out = append(out, salt...)
	out = append(out, nonce...)

	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], uint64(createdAt.UnixNano()))
	out = append(out, tsBuf[:]...)

	return append(out, ciphertext...)
}

func decodeRecord(raw []byte) (salt, nonce, ciphertext []byte, createdAt time.Time, err error) {
	const minLen = saltSize + nonceSize + 8
	if len(raw) < minLen {
		return nil, nil, nil, time.Time{}, ErrRecordTooShort
	}

	salt = raw[:saltSize]
	nonce = raw[saltSize : saltSize+nonceSize]
	ts := int64(binary.BigEndian.Uint64(raw[saltSize+nonceSize : minLen]))
	ciphertext = raw[minLen:]

	return salt, nonce, ciphertext, time.Unix(0, ts), nil
}
