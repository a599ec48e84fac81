package token

// ErrorKind classifies why an encode or decode call failed.
// Kinds are stable across versions; branch on them instead of messages.
type ErrorKind string

const (
	// KindMissingInput is returned when the key, payload or token is absent
	KindMissingInput ErrorKind = "MissingInput"

	// KindEmptyPayload is returned when the payload is an object without members
	KindEmptyPayload ErrorKind = "EmptyPayload"

	// KindInvalidPayload is returned when the payload does not serialize to a JSON object
	KindInvalidPayload ErrorKind = "InvalidPayload"

	// KindInvalidHeader is returned when extra header fields cannot be serialized
	KindInvalidHeader ErrorKind = "InvalidHeader"

	// KindUnsupportedAlgorithm is returned for unknown algorithms, including "none"
	KindUnsupportedAlgorithm ErrorKind = "UnsupportedAlgorithm"

	// KindMalformedToken is returned when the token structure cannot be parsed
	KindMalformedToken ErrorKind = "MalformedToken"

	// KindInvalidKey is returned when the key cannot be used with the algorithm
	KindInvalidKey ErrorKind = "InvalidKey"

	// KindInvalidSignature is returned when the signature does not match the key
	KindInvalidSignature ErrorKind = "InvalidSignature"
)

// Canonical messages carried by *Error
const (
	MsgMissingPayloadInput  = "The key and payload are mandatory!"
	MsgMissingTokenInput    = "The key and token are mandatory!"
	MsgEmptyPayload         = "The payload is an empty object!"
	MsgInvalidPayload       = "The payload must be a JSON object!"
	MsgInvalidHeader        = "The header fields must be JSON serializable!"
	MsgUnsupportedAlgorithm = "The algorithm is not supported!"
	MsgMalformedToken       = "The JWT should consist of three parts!"
	MsgMalformedHeader      = "The JWT header is malformed!"
	MsgMalformedPayload     = "The JWT payload is malformed!"
	MsgInvalidKey           = "The key is not valid for the algorithm!"
	MsgInvalidSignature     = "Invalid key!"
)

// Error is the only error type returned by Encode and Decode
type Error struct {
	// Kind is the stable failure category
	Kind ErrorKind

	// Message is the human-readable description
	Message string

	// Err is the underlying cause, if any
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below work with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is
var (
	ErrMissingInput         = &Error{Kind: KindMissingInput, Message: "missing key or input"}
	ErrEmptyPayload         = &Error{Kind: KindEmptyPayload, Message: MsgEmptyPayload}
	ErrInvalidPayload       = &Error{Kind: KindInvalidPayload, Message: MsgInvalidPayload}
	ErrInvalidHeader        = &Error{Kind: KindInvalidHeader, Message: MsgInvalidHeader}
	ErrUnsupportedAlgorithm = &Error{Kind: KindUnsupportedAlgorithm, Message: MsgUnsupportedAlgorithm}
	ErrMalformedToken       = &Error{Kind: KindMalformedToken, Message: MsgMalformedToken}
	ErrInvalidKey           = &Error{Kind: KindInvalidKey, Message: MsgInvalidKey}
	ErrInvalidSignature     = &Error{Kind: KindInvalidSignature, Message: MsgInvalidSignature}
)

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
