package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrMissingClaims     = errors.New("jwt: missing claims")
	ErrInvalidClaims     = errors.New("jwt: invalid claims")
	ErrInvalidValidity   = errors.New("jwt: invalid validity window")
	ErrInvalidEncoding   = errors.New("jwt: invalid base64url encoding")

	// ErrInvalidToken is the generic rejection. Every validation failure matches it.
	ErrInvalidToken = errors.New("jwt: invalid token")

	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrMalformedHeader      = errors.New("jwt: malformed header")
	ErrMalformedPayload     = errors.New("jwt: malformed payload")
	ErrUnsupportedType      = errors.New("jwt: unsupported token type")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")
	ErrInvalidSignature     = errors.New("jwt: invalid signature")
	ErrTokenExpired         = errors.New("jwt: token is expired")
	ErrTokenNotYetValid     = errors.New("jwt: token is not valid yet")
	ErrMissingExpiration    = errors.New("jwt: missing expiration claim")
)

// ValidationError describes why a token was rejected.
//
// Kind is one of the validation sentinels above. Detail carries the internal
// diagnostic (for example the rejected algorithm name) and must not be shown
// to clients; use Public for anything that leaves the process.
type ValidationError struct {
	Kind   error
	Detail string
	Err    error

	public bool
}

func (e *ValidationError) Error() string {
	if e.public {
		return e.Public()
	}
	// Causes that already wrap the kind carry its message.
	if e.Err != nil && errors.Is(e.Err, e.Kind) {
		return e.Err.Error()
	}
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Public returns the message that is safe to surface to clients.
func (e *ValidationError) Public() string {
	return ErrInvalidToken.Error()
}

func (e *ValidationError) Unwrap() []error {
	errs := []error{e.Kind, ErrInvalidToken}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newValidationError(kind error, cause error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
		Err:    cause,
	}
}

// PublicMessage returns the client-safe message for err.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Public()
	}
	return ErrInvalidToken.Error()
}
