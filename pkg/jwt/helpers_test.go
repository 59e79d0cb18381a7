package jwt_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

var testNow = time.Unix(1_700_000_000, 0)

// forge builds a token with an arbitrary header, signed with HMAC-SHA256 under key.
func forge(t testing.TB, key string, header, payload any) string {
	t.Helper()
	h, err := jwt.EncodeSegment(header)
	require.NoError(t, err)
	p, err := jwt.EncodeSegment(payload)
	require.NoError(t, err)
	return forgeSegments(key, h, p)
}

func forgeSegments(key, headerSeg, payloadSeg string) string {
	input := jwt.SigningInput(headerSeg, payloadSeg)
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(input))
	return input + "." + jwt.EncodeBytes(mac.Sum(nil))
}

func newService(t testing.TB, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	opts = append([]jwt.Option{jwt.WithClock(jwt.FixedClock(testNow))}, opts...)
	svc, err := jwt.NewFromString("test-secret", opts...)
	require.NoError(t, err)
	return svc
}
