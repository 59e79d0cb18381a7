package jwt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Reserved claim names handled by this package.
const (
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimID        = "jti"
)

// Header represents the JWT header as defined in RFC 7515.
// Field order fixes the encoding to {"alg":"HS256","typ":"JWT"}.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Claims is a decoded token payload. Numbers are kept as json.Number.
type Claims map[string]any

// StandardClaims mirrors the registered claims of RFC 7519 Section 4.1.
// Embed it in a struct passed to Service.Parse or Service.Create.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Clone returns a shallow copy of c.
func (c Claims) Clone() Claims {
	out := make(Claims, len(c)+2)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Int64 returns the named claim as epoch seconds.
// ok is false when the claim is absent; err is set when it is present but not a number.
func (c Claims) Int64(name string) (v int64, ok bool, err error) {
	raw, ok := c[name]
	if !ok {
		return 0, false, nil
	}
	v, err = toInt64(raw)
	if err != nil {
		return 0, true, fmt.Errorf("claim %q: %w", name, err)
	}
	return v, true, nil
}

// String returns the named claim if it is a string.
func (c Claims) String(name string) (string, bool) {
	s, ok := c[name].(string)
	return s, ok
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n.String())
		}
		return floatToInt64(f)
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case string:
		return 0, fmt.Errorf("not a number: %s", strconv.Quote(n))
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("number out of range: %v", f)
	}
	return int64(math.Floor(f)), nil
}
