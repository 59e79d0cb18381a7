package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Validate verifies token and returns its claims.
//
// Checks run in order and stop at the first failure: structure, header,
// type and algorithm, signature, payload, then the time window. The signature
// is computed over the token's own header and payload segments.
func (s *Service) Validate(token string) (Claims, error) {
	claims, _, err := s.validate(token)
	return claims, err
}

// ValidateRaw is Validate returning the payload JSON exactly as it was signed.
func (s *Service) ValidateRaw(token string) ([]byte, error) {
	_, raw, err := s.validate(token)
	return raw, err
}

// Parse validates token and unmarshals its payload into claims.
func (s *Service) Parse(token string, claims any) error {
	if claims == nil {
		return fmt.Errorf("failed to unmarshal claims: %w", ErrInvalidClaims)
	}
	_, raw, err := s.validate(token)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, claims); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", errors.Join(ErrInvalidClaims, err))
	}
	return nil
}

// PeekClaims decodes the payload without checking the signature or time claims.
//
// The result is UNAUTHENTICATED: anyone can forge it. Use it for inspection
// and routing only, never for authorization decisions.
func (s *Service) PeekClaims(token string) (Claims, error) {
	headerSeg, payloadSeg, _, err := SplitToken(token)
	if err != nil {
		return nil, s.reject(newValidationError(ErrMalformedToken, err, ""))
	}
	if _, verr := decodeHeader(headerSeg); verr != nil {
		return nil, s.reject(verr)
	}
	claims, _, verr := decodePayload(payloadSeg)
	if verr != nil {
		return nil, s.reject(verr)
	}
	return claims, nil
}

func (s *Service) validate(token string) (Claims, []byte, error) {
	headerSeg, payloadSeg, sigSeg, err := SplitToken(token)
	if err != nil {
		return nil, nil, s.reject(newValidationError(ErrMalformedToken, err, ""))
	}

	header, verr := decodeHeader(headerSeg)
	if verr != nil {
		return nil, nil, s.reject(verr)
	}

	if header.Type != HeaderType {
		return nil, nil, s.reject(newValidationError(ErrUnsupportedType, nil, "typ %q", header.Type))
	}
	alg, ok := s.algorithms.lookup(header.Algorithm)
	if !ok {
		return nil, nil, s.reject(newValidationError(ErrUnsupportedAlgorithm, nil,
			"algorithm %q is not supported", header.Algorithm))
	}

	signature, err := DecodeSegment(sigSeg)
	if err != nil {
		return nil, nil, s.reject(newValidationError(ErrInvalidSignature, err, "signature segment"))
	}
	if !alg.Verify(s.signingKey, []byte(SigningInput(headerSeg, payloadSeg)), signature) {
		return nil, nil, s.reject(newValidationError(ErrInvalidSignature, nil, "%s mismatch", alg.Name()))
	}

	claims, raw, verr := decodePayload(payloadSeg)
	if verr != nil {
		return nil, nil, s.reject(verr)
	}

	if verr := s.checkTime(claims); verr != nil {
		return nil, nil, s.reject(verr)
	}

	return claims, raw, nil
}

func decodeHeader(seg string) (Header, *ValidationError) {
	var header Header
	if _, err := decodeJSONSegment(seg, &header); err != nil {
		return Header{}, newValidationError(ErrMalformedHeader, err, "")
	}
	if header.Algorithm == "" || header.Type == "" {
		return Header{}, newValidationError(ErrMalformedHeader, nil, "alg and typ are required")
	}
	return header, nil
}

func decodePayload(seg string) (Claims, []byte, *ValidationError) {
	var claims Claims
	raw, err := decodeJSONSegment(seg, &claims)
	if err != nil {
		return nil, nil, newValidationError(ErrMalformedPayload, err, "")
	}
	if claims == nil {
		return nil, nil, newValidationError(ErrMalformedPayload, nil, "payload is not a JSON object")
	}
	return claims, raw, nil
}

// checkTime enforces exp (inclusive), nbf and, when enabled, iat.
func (s *Service) checkTime(claims Claims) *ValidationError {
	now := s.now()
	leeway := validitySeconds(s.leeway)

	exp, hasExp, err := claims.Int64(ClaimExpiresAt)
	if err != nil {
		return newValidationError(ErrMalformedPayload, err, "")
	}
	if !hasExp && s.requireExpiration {
		return newValidationError(ErrMissingExpiration, nil, "")
	}
	if hasExp && pastBound(now, exp, leeway) {
		return newValidationError(ErrTokenExpired, nil, "expired at %d, now %d", exp, now)
	}

	nbf, hasNbf, err := claims.Int64(ClaimNotBefore)
	if err != nil {
		return newValidationError(ErrMalformedPayload, err, "")
	}
	if hasNbf && beforeBound(now, nbf, leeway) {
		return newValidationError(ErrTokenNotYetValid, nil, "nbf %d, now %d", nbf, now)
	}

	if !s.checkIssuedAt {
		return nil
	}
	iat, hasIat, err := claims.Int64(ClaimIssuedAt)
	if err != nil {
		return newValidationError(ErrMalformedPayload, err, "")
	}
	if hasIat && beforeBound(now, iat, leeway) {
		return newValidationError(ErrTokenNotYetValid, nil, "issued at %d, now %d", iat, now)
	}
	return nil
}

// pastBound reports now > bound+leeway without overflowing.
func pastBound(now, bound, leeway int64) bool {
	if bound > math.MaxInt64-leeway {
		return false
	}
	return now > bound+leeway
}

// beforeBound reports now < bound-leeway without overflowing.
func beforeBound(now, bound, leeway int64) bool {
	if bound < math.MinInt64+leeway {
		return false
	}
	return now < bound-leeway
}

// reject reports the diagnostic and shapes the error for the caller.
func (s *Service) reject(verr *ValidationError) error {
	s.reporter.Report(verr.Kind, verr.Error())
	verr.public = s.publicErrors
	return verr
}
