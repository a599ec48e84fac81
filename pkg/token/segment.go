package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSegmentEncoding is returned when a segment is not valid base64url
	ErrSegmentEncoding = errors.New("segment is not base64url encoded")

	// ErrSegmentJSON is returned when a segment does not hold a JSON object
	ErrSegmentJSON = errors.New("segment is not a JSON object")
)

// JSONEncoder lets callers plug in an alternative JSON implementation.
// Unmarshal must accept a *map[string]interface{} and a
// *map[string]json.RawMessage destination.
type JSONEncoder interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

var strictEncoding = base64.RawURLEncoding.Strict()

type stdJSON struct{}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// EncodeSegment encodes b as unpadded base64url
func EncodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeSegment decodes an unpadded base64url segment.
// Trailing "=" padding is tolerated; line breaks, the standard alphabet's
// "+" and "/", and non-zero trailing bits are not.
func DecodeSegment(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrSegmentEncoding
	}
	b, err := strictEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSegmentEncoding, err)
	}
	return b, nil
}

// decodeObject decodes a base64url segment holding a JSON object
func decodeObject(enc JSONEncoder, segment string) (map[string]interface{}, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}
	return parseObject(enc, raw)
}

func parseObject(enc JSONEncoder, raw []byte) (map[string]interface{}, error) {
	var obj map[string]interface{}
	if err := enc.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSegmentJSON, err)
	}
	// "null" unmarshals into a nil map without error
	if obj == nil {
		return nil, ErrSegmentJSON
	}
	return obj, nil
}

// serializeObject marshals v and checks that it is a JSON object,
// returning the encoded bytes and the number of members.
func serializeObject(enc JSONEncoder, v interface{}) ([]byte, int, error) {
	raw, err := enc.Marshal(v)
	if err != nil {
		return nil, 0, err
	}
	var members map[string]json.RawMessage
	if err := enc.Unmarshal(raw, &members); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSegmentJSON, err)
	}
	if members == nil {
		return nil, 0, ErrSegmentJSON
	}
	return raw, len(members), nil
}
