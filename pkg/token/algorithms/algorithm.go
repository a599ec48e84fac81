package algorithms

import (
	"crypto"
	"errors"
)

var (
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidKeyType       = errors.New("invalid key type")
)

// Family groups algorithms by how they use key material
type Family int

const (
	// FamilyHMAC signs and verifies with one shared secret
	FamilyHMAC Family = iota + 1
	// FamilyRSA signs with a private key and verifies with the public key
	FamilyRSA
)

func (f Family) String() string {
	switch f {
	case FamilyHMAC:
		return "hmac"
	case FamilyRSA:
		return "rsa"
	default:
		return "unknown"
	}
}

// Algorithm defines how a JWS algorithm signs and verifies a signing input
type Algorithm interface {
	// Name returns the algorithm name as it appears in the "alg" header (e.g., "HS256")
	Name() string

	// Hash returns the hash function used by the algorithm
	Hash() crypto.Hash

	// Family returns the key family the algorithm belongs to
	Family() Family

	// Sign computes the raw signature bytes over input
	Sign(input []byte, key interface{}) ([]byte, error)

	// Verify checks signature against input.
	// Returns ErrInvalidSignature on mismatch and ErrInvalidKeyType when
	// the key cannot be used with this algorithm.
	Verify(input, signature []byte, key interface{}) error

	// KeyCheck validates that key can be coerced for this algorithm
	KeyCheck(key interface{}) error
}

// BaseAlgorithm provides common functionality for all algorithms
type BaseAlgorithm struct {
	name   string
	hash   crypto.Hash
	family Family
}

func (b *BaseAlgorithm) Name() string {
	return b.name
}

func (b *BaseAlgorithm) Hash() crypto.Hash {
	return b.hash
}

func (b *BaseAlgorithm) Family() Family {
	return b.family
}

func (b *BaseAlgorithm) digest(input []byte) []byte {
	h := b.hash.New()
	h.Write(input)
	return h.Sum(nil)
}
