package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HeaderAlgorithm and HeaderType are the only header values this package issues
// and accepts.
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Algorithm signs and verifies a signing input with a symmetric key.
type Algorithm interface {
	// Name is the value carried in the "alg" header.
	Name() string
	Sign(key, input []byte) []byte
	// Verify must compare in constant time.
	Verify(key, input, signature []byte) bool
}

type hs256 struct{}

func (hs256) Name() string { return HeaderAlgorithm }

func (hs256) Sign(key, input []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(input)
	return h.Sum(nil)
}

// Verify recomputes the MAC and compares with hmac.Equal, which checks length
// first and then compares every byte regardless of where a mismatch occurs.
func (a hs256) Verify(key, input, signature []byte) bool {
	return hmac.Equal(a.Sign(key, input), signature)
}

// HS256 is HMAC-SHA256.
var HS256 Algorithm = hs256{}

// algorithms is the allow-list consulted during validation.
type algorithms map[string]Algorithm

func newAlgorithms(algs ...Algorithm) algorithms {
	m := make(algorithms, len(algs))
	for _, a := range algs {
		m[a.Name()] = a
	}
	return m
}

func (m algorithms) lookup(name string) (Algorithm, bool) {
	a, ok := m[name]
	return a, ok
}

// Supported reports whether alg is accepted by validation.
func Supported(alg string) bool {
	_, ok := defaultAlgorithms.lookup(alg)
	return ok
}

var defaultAlgorithms = newAlgorithms(HS256)
