package secrets

import "errors"

var (
	ErrEmptyMasterKey      = errors.New("secrets: empty master key")
	ErrEmptyPurpose        = errors.New("secrets: empty key purpose")
	ErrKeyTooShort         = errors.New("secrets: key must be at least 32 bytes")
	ErrKeyGenerationFailed = errors.New("secrets: key generation failed")
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
)
