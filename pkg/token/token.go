package token

import (
	"log/slog"
)

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	DefaultAlgorithm: "HS256",
}

// Config holds the configuration for a Codec
type Config struct {
	// DefaultAlgorithm is used by Encode when WithAlgorithm is not given.
	// Supported values: HS256, HS384, HS512, RS256
	// Defaults to "HS256" if not specified
	DefaultAlgorithm string

	// JSON serializes headers and payloads.
	// Defaults to encoding/json if not specified
	JSON JSONEncoder

	// Logger receives debug records for rejected calls.
	// Records carry the operation, error kind and algorithm only; keys,
	// tokens and payloads are never logged.
	// Defaults to discarding all records
	Logger *slog.Logger
}

// Header is the decoded JOSE header of a token
type Header map[string]interface{}

// Alg returns the "alg" field
func (h Header) Alg() string {
	return h.str("alg")
}

// Typ returns the "typ" field
func (h Header) Typ() string {
	return h.str("typ")
}

// KeyID returns the "kid" field
func (h Header) KeyID() string {
	return h.str("kid")
}

func (h Header) str(name string) string {
	s, _ := h[name].(string)
	return s
}

// Decoded represents a verified token
type Decoded struct {
	// Raw is the original token string
	Raw string

	// Header holds the decoded header, including any extra fields
	Header Header

	// Payload holds the verified claims. Numbers are float64, as with
	// encoding/json, so integers beyond 2^53 lose precision here; use Claims
	// with an integer field to read them exactly.
	Payload map[string]interface{}

	rawPayload []byte
	json       JSONEncoder
}

// Claims decodes the verified payload into v, which is typically a pointer
// to a struct with json tags.
func (d *Decoded) Claims(v interface{}) error {
	return d.json.Unmarshal(d.rawPayload, v)
}

// EncodeOption customizes a single Encode call
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	algorithm string
	header    map[string]interface{}
}

// WithAlgorithm selects the signing algorithm
func WithAlgorithm(name string) EncodeOption {
	return func(o *encodeOptions) {
		o.algorithm = name
	}
}

// WithHeader merges extra fields into the token header.
// The "typ" and "alg" fields are always set by the codec and cannot be overridden.
func WithHeader(fields map[string]interface{}) EncodeOption {
	return func(o *encodeOptions) {
		if o.header == nil {
			o.header = make(map[string]interface{}, len(fields))
		}
		for k, v := range fields {
			o.header[k] = v
		}
	}
}

// WithKeyID sets the "kid" header field
func WithKeyID(kid string) EncodeOption {
	return WithHeader(map[string]interface{}{"kid": kid})
}

// DecodeOption customizes a single Decode call
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	expectedAlgorithm string
}

// WithExpectedAlgorithm rejects tokens whose header names a different algorithm
func WithExpectedAlgorithm(name string) DecodeOption {
	return func(o *decodeOptions) {
		o.expectedAlgorithm = name
	}
}
