package token

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/alexadamm/jwt-codec-go/pkg/token/algorithms"
)

// Codec encodes and decodes signed tokens.
// A Codec is immutable after New and safe for concurrent use.
type Codec struct {
	defaultAlg string
	json       JSONEncoder
	logger     *slog.Logger
}

var std = mustNew(DefaultConfig)

// New creates a new Codec instance
func New(config Config) (*Codec, error) {
	alg := config.DefaultAlgorithm
	if alg == "" {
		alg = "HS256"
	}
	if _, err := algorithms.Get(alg); err != nil {
		return nil, fmt.Errorf("invalid default algorithm: %w", err)
	}

	c := &Codec{
		defaultAlg: alg,
		json:       config.JSON,
		logger:     config.Logger,
	}
	if c.json == nil {
		c.json = stdJSON{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

func mustNew(config Config) *Codec {
	c, err := New(config)
	if err != nil {
		panic(err)
	}
	return c
}

// Algorithms returns the supported algorithm names in a stable order
func Algorithms() []string {
	return algorithms.List()
}

// Encode signs payload with the default codec
func Encode(key, payload interface{}, opts ...EncodeOption) (string, error) {
	return std.Encode(key, payload, opts...)
}

// Decode verifies token with the default codec
func Decode(key interface{}, token string, opts ...DecodeOption) (*Decoded, error) {
	return std.Decode(key, token, opts...)
}

// Encode creates a signed token from payload.
// The payload must serialize to a JSON object with at least one member;
// maps, structs and json.RawMessage values all qualify.
// Returns the token in compact form (header.payload.signature)
func (c *Codec) Encode(key, payload interface{}, opts ...EncodeOption) (string, error) {
	o := encodeOptions{algorithm: c.defaultAlg}
	for _, opt := range opts {
		opt(&o)
	}

	if isMissingKey(key) || isMissing(payload) {
		return "", c.reject("encode", o.algorithm, newError(KindMissingInput, MsgMissingPayloadInput, nil))
	}
	if m, ok := payload.(map[string]interface{}); ok && len(m) == 0 {
		return "", c.reject("encode", o.algorithm, newError(KindEmptyPayload, MsgEmptyPayload, nil))
	}

	payloadJSON, members, err := serializeObject(c.json, payload)
	if err != nil {
		return "", c.reject("encode", o.algorithm, newError(KindInvalidPayload, MsgInvalidPayload, err))
	}
	if members == 0 {
		return "", c.reject("encode", o.algorithm, newError(KindEmptyPayload, MsgEmptyPayload, nil))
	}

	alg, err := algorithms.Get(o.algorithm)
	if err != nil {
		return "", c.reject("encode", o.algorithm, newError(KindUnsupportedAlgorithm, MsgUnsupportedAlgorithm, err))
	}

	header := make(map[string]interface{}, len(o.header)+2)
	for k, v := range o.header {
		header[k] = v
	}
	header["typ"] = "JWT"
	header["alg"] = alg.Name()

	headerJSON, err := c.json.Marshal(header)
	if err != nil {
		return "", c.reject("encode", o.algorithm, newError(KindInvalidHeader, MsgInvalidHeader, err))
	}

	signingInput := EncodeSegment(headerJSON) + "." + EncodeSegment(payloadJSON)

	signature, err := alg.Sign([]byte(signingInput), key)
	if err != nil {
		return "", c.reject("encode", o.algorithm, newError(KindInvalidKey, MsgInvalidKey, err))
	}

	return signingInput + "." + EncodeSegment(signature), nil
}

// Decode validates a token and returns its payload and header.
// Performs validation of:
// - Token format and structure
// - Header algorithm against the registry
// - Signature using key
// Claims such as exp or aud are not interpreted.
func (c *Codec) Decode(key interface{}, token string, opts ...DecodeOption) (*Decoded, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if isMissingKey(key) || token == "" {
		return nil, c.reject("decode", "", newError(KindMissingInput, MsgMissingTokenInput, nil))
	}

	// Split token
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, c.reject("decode", "", newError(KindMalformedToken, MsgMalformedToken, nil))
	}

	header, err := decodeObject(c.json, parts[0])
	if err != nil {
		return nil, c.reject("decode", "", newError(KindMalformedToken, MsgMalformedHeader, err))
	}

	name, _ := header["alg"].(string)
	alg, err := algorithms.Get(name)
	if err != nil {
		return nil, c.reject("decode", name, newError(KindUnsupportedAlgorithm, MsgUnsupportedAlgorithm, err))
	}
	if o.expectedAlgorithm != "" && o.expectedAlgorithm != name {
		err := fmt.Errorf("%w: expected %q, got %q", algorithms.ErrUnsupportedAlgorithm, o.expectedAlgorithm, name)
		return nil, c.reject("decode", name, newError(KindUnsupportedAlgorithm, MsgUnsupportedAlgorithm, err))
	}

	if err := alg.KeyCheck(key); err != nil {
		return nil, c.reject("decode", name, newError(KindInvalidKey, MsgInvalidKey, err))
	}

	signature, err := DecodeSegment(parts[2])
	if err != nil {
		return nil, c.reject("decode", name, newError(KindInvalidSignature, MsgInvalidSignature, err))
	}

	// Verify signature
	signingInput := parts[0] + "." + parts[1]
	if err := alg.Verify([]byte(signingInput), signature, key); err != nil {
		if errors.Is(err, algorithms.ErrInvalidKeyType) {
			return nil, c.reject("decode", name, newError(KindInvalidKey, MsgInvalidKey, err))
		}
		return nil, c.reject("decode", name, newError(KindInvalidSignature, MsgInvalidSignature, err))
	}

	// The payload is only parsed once its signature is known to be good
	rawPayload, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, c.reject("decode", name, newError(KindMalformedToken, MsgMalformedPayload, err))
	}
	payload, err := parseObject(c.json, rawPayload)
	if err != nil {
		return nil, c.reject("decode", name, newError(KindMalformedToken, MsgMalformedPayload, err))
	}

	return &Decoded{
		Raw:        token,
		Header:     Header(header),
		Payload:    payload,
		rawPayload: rawPayload,
		json:       c.json,
	}, nil
}

// EncodeFunc calls Encode and delivers the result to cb
func (c *Codec) EncodeFunc(key, payload interface{}, cb func(token string, err error), opts ...EncodeOption) {
	cb(c.Encode(key, payload, opts...))
}

// DecodeFunc calls Decode and delivers the result to cb
func (c *Codec) DecodeFunc(key interface{}, token string, cb func(decoded *Decoded, err error), opts ...DecodeOption) {
	cb(c.Decode(key, token, opts...))
}

func (c *Codec) reject(op, alg string, err *Error) error {
	c.logger.Debug("token rejected",
		slog.String("op", op),
		slog.String("kind", string(err.Kind)),
		slog.String("alg", alg),
	)
	return err
}

// isMissing reports whether v is nil, a nil reference, or an empty key string
func isMissing(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []byte:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isMissingKey extends isMissing with zero scalars: a key of false or 0 is
// treated as absent rather than as key material of the wrong type.
func isMissingKey(v interface{}) bool {
	if isMissing(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}
