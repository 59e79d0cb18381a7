package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// segmentEncoding is unpadded base64url. Strict mode rejects non-zero
// trailing bits so every segment has exactly one valid spelling.
var segmentEncoding = base64.RawURLEncoding.Strict()

// EncodeSegment serializes v to JSON and returns it as a base64url segment.
// Maps are encoded with sorted keys, structs in field order.
func EncodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return EncodeBytes(data), nil
}

// EncodeBytes returns data as an unpadded base64url string.
func EncodeBytes(data []byte) string {
	return segmentEncoding.EncodeToString(data)
}

// DecodeSegment decodes an unpadded base64url segment.
// Only [A-Za-z0-9_-] is accepted; the decoder alone would skip CR and LF.
func DecodeSegment(seg string) ([]byte, error) {
	for i := 0; i < len(seg); i++ {
		if !isSegmentByte(seg[i]) {
			return nil, fmt.Errorf("%w: illegal byte %q at offset %d", ErrInvalidEncoding, seg[i], i)
		}
	}
	data, err := segmentEncoding.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

func isSegmentByte(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-' || c == '_'
}

// SplitToken splits a compact token into its header, payload and signature
// segments. All three must be present and non-empty.
func SplitToken(token string) (header, payload, signature string, err error) {
	if token == "" {
		return "", "", "", fmt.Errorf("%w: token is empty", ErrMalformedToken)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	for i, p := range parts {
		if p == "" {
			return "", "", "", fmt.Errorf("%w: segment %d is empty", ErrMalformedToken, i)
		}
	}

	return parts[0], parts[1], parts[2], nil
}

// SigningInput joins the header and payload segments the way they are signed.
func SigningInput(header, payload string) string {
	return header + "." + payload
}

// decodeJSONSegment decodes a segment and unmarshals its JSON into v,
// keeping numbers as json.Number.
func decodeJSONSegment(seg string, v any) ([]byte, error) {
	data, err := DecodeSegment(seg)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(data, v); err != nil {
		return nil, err
	}
	return data, nil
}

func unmarshalJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
