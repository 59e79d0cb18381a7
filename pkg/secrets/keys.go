package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of generated and derived keys: 256 bits, matching
	// the HMAC-SHA256 block output.
	KeySize = 32

	// saltInfo is prepended to every purpose for domain separation.
	saltInfo = "jwtkit-signing-v1:"
)

// GenerateKey creates a new random KeySize-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// DeriveKey derives a KeySize-byte key bound to purpose from master using
// HKDF-SHA256. Different purposes yield independent keys, so one master
// secret can back several token audiences.
// The caller should Wipe the result once it has been handed over.
func DeriveKey(master []byte, purpose string) ([]byte, error) {
	if len(master) == 0 {
		return nil, ErrEmptyMasterKey
	}
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}

	r := hkdf.New(sha256.New, master, nil, []byte(saltInfo+purpose))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// ValidateKey rejects keys shorter than KeySize.
func ValidateKey(key []byte) error {
	if len(key) < KeySize {
		return ErrKeyTooShort
	}
	return nil
}

// Wipe zeroes b.
func Wipe(b []byte) {
	clear(b)
}
