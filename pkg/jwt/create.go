package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Create signs payload and returns a compact token.
//
// payload may be Claims, map[string]any, raw JSON ([]byte or json.RawMessage)
// or any JSON-serialisable value. Raw JSON is signed verbatim unless claims
// have to be stamped.
//
// A positive validity stamps iat with the current time and exp with iat plus
// validity in whole seconds, replacing any iat/exp the caller set. A zero
// validity leaves the payload's own iat/exp untouched.
func (s *Service) Create(payload any, validity time.Duration) (string, error) {
	if validity < 0 {
		return "", ErrInvalidValidity
	}

	payloadJSON, err := s.encodePayload(payload, validity)
	if err != nil {
		return "", err
	}

	headerSeg, err := EncodeSegment(Header{Algorithm: s.signer.Name(), Type: HeaderType})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	input := SigningInput(headerSeg, EncodeBytes(payloadJSON))
	signature := s.signer.Sign(s.signingKey, []byte(input))

	return input + "." + EncodeBytes(signature), nil
}

// Generate signs claims without stamping time claims.
func (s *Service) Generate(claims any) (string, error) {
	return s.Create(claims, 0)
}

func (s *Service) encodePayload(payload any, validity time.Duration) ([]byte, error) {
	stamp := validity > 0 || s.tokenID

	var raw []byte
	switch p := payload.(type) {
	case nil:
		return nil, ErrMissingClaims
	case json.RawMessage:
		raw = p
	case []byte:
		raw = p
	case Claims:
		if p == nil {
			return nil, ErrMissingClaims
		}
		return s.marshalClaims(p.Clone(), validity)
	case map[string]any:
		if p == nil {
			return nil, ErrMissingClaims
		}
		return s.marshalClaims(Claims(p).Clone(), validity)
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, errors.Join(ErrInvalidClaims, err)
		}
		if !stamp {
			return data, nil
		}
		raw = data
	}

	if len(raw) == 0 {
		return nil, ErrMissingClaims
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidClaims)
	}
	if !stamp {
		return raw, nil
	}

	var claims Claims
	if err := unmarshalJSON(raw, &claims); err != nil || claims == nil {
		return nil, fmt.Errorf("%w: payload must be a JSON object to stamp claims", ErrInvalidClaims)
	}
	return s.marshalClaims(claims, validity)
}

// marshalClaims stamps claims in place and serializes them.
func (s *Service) marshalClaims(claims Claims, validity time.Duration) ([]byte, error) {
	if validity > 0 {
		iat := s.now()
		claims[ClaimIssuedAt] = iat
		claims[ClaimExpiresAt] = iat + validitySeconds(validity)
	}

	if s.tokenID {
		if _, ok := claims[ClaimID]; !ok {
			claims[ClaimID] = uuid.NewString()
		}
	}

	data, err := json.Marshal(claims)
	if err != nil {
		return nil, errors.Join(ErrInvalidClaims, err)
	}
	return data, nil
}

// validitySeconds rounds sub-second remainders up so a positive window never
// produces exp == iat.
func validitySeconds(d time.Duration) int64 {
	secs := int64(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
