// Package secrets manages HMAC signing key material: random generation,
// purpose-bound derivation from a master secret (HKDF-SHA256) and zeroing.
package secrets
