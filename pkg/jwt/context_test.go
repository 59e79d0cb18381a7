package jwt_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestContextToken(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		ctx := jwt.SetToken(context.Background(), "test.jwt.token")
		token, ok := jwt.GetToken(ctx)
		assert.True(t, ok)
		assert.Equal(t, "test.jwt.token", token)
	})

	t.Run("not found", func(t *testing.T) {
		token, ok := jwt.GetToken(context.Background())
		assert.False(t, ok)
		assert.Empty(t, token)
	})
}

func TestContextClaims(t *testing.T) {
	t.Parallel()
	claims := jwt.Claims{
		"sub":   "1234567890",
		"name":  "John Doe",
		"admin": true,
		"exp":   json.Number("1700003600"),
	}

	t.Run("typed lookup", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), claims)

		got, ok := jwt.GetClaims[jwt.Claims](ctx)
		require.True(t, ok)
		assert.Equal(t, claims, got)

		_, ok = jwt.GetClaims[map[string]any](ctx)
		assert.False(t, ok, "Claims and map[string]any are distinct types")
	})

	t.Run("not found", func(t *testing.T) {
		got, ok := jwt.GetClaims[jwt.Claims](context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("convert into struct", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), claims)

		var dst TestClaims
		require.NoError(t, jwt.GetClaimsAs(ctx, &dst))
		assert.Equal(t, "1234567890", dst.Subject)
		assert.Equal(t, "John Doe", dst.Name)
		assert.True(t, dst.Admin)
		assert.Equal(t, int64(1700003600), dst.ExpiresAt)
	})

	t.Run("same type is assigned directly", func(t *testing.T) {
		in := TestClaims{Name: "Jane"}
		ctx := jwt.SetClaims(context.Background(), in)

		var dst TestClaims
		require.NoError(t, jwt.GetClaimsAs(ctx, &dst))
		assert.Equal(t, in, dst)
	})

	t.Run("missing claims", func(t *testing.T) {
		var dst TestClaims
		err := jwt.GetClaimsAs(context.Background(), &dst)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaims)
	})

	t.Run("incompatible claims", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), jwt.Claims{"admin": "yes"})

		var dst TestClaims
		err := jwt.GetClaimsAs(ctx, &dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal claims")
	})

	t.Run("nil destination", func(t *testing.T) {
		ctx := jwt.SetClaims(context.Background(), claims)
		err := jwt.GetClaimsAs[TestClaims](ctx, nil)
		assert.ErrorIs(t, err, jwt.ErrInvalidClaims)
	})

	t.Run("token and claims together", func(t *testing.T) {
		ctx := jwt.SetToken(context.Background(), "a.b.c")
		ctx = jwt.SetClaims(ctx, claims)

		token, ok := jwt.GetToken(ctx)
		require.True(t, ok)
		assert.Equal(t, "a.b.c", token)

		got, ok := jwt.GetClaims[jwt.Claims](ctx)
		require.True(t, ok)
		assert.Equal(t, claims, got)
	})
}
