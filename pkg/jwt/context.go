package jwt

import (
	"context"
	"encoding/json"
	"fmt"
)

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	jwtContextKey    = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

// SetToken sets the JWT token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, jwtContextKey, token)
}

// SetClaims sets the JWT claims in the context.
// The middleware stores Claims; any other type is accepted too.
func SetClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the JWT token string from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(jwtContextKey).(string)
	return token, ok
}

// GetClaims returns the claims stored in the context as T.
func GetClaims[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsContextKey).(T)
	if !ok {
		var zero T
		return zero, false
	}
	return claims, true
}

// GetClaimsAs converts the claims stored in the context into claims,
// going through JSON when the stored type differs.
func GetClaimsAs[T any](ctx context.Context, claims *T) error {
	if claims == nil {
		return fmt.Errorf("failed to unmarshal claims: %w", ErrInvalidClaims)
	}

	v := ctx.Value(claimsContextKey)
	if v == nil {
		return ErrInvalidClaims
	}

	if typed, ok := v.(T); ok {
		*claims = typed
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}
	if err := json.Unmarshal(data, claims); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}
	return nil
}
