package algorithms

import (
	"crypto"
	"crypto/hmac"
)

// HMACAlgorithm implements the Algorithm interface for keyed-hash signatures
type HMACAlgorithm struct {
	BaseAlgorithm
}

// NewHMACAlgorithm creates a new HMAC algorithm instance
func NewHMACAlgorithm(name string, hash crypto.Hash) Algorithm {
	return &HMACAlgorithm{
		BaseAlgorithm: BaseAlgorithm{
			name:   name,
			hash:   hash,
			family: FamilyHMAC,
		},
	}
}

// Sign returns the raw HMAC digest of input
func (a *HMACAlgorithm) Sign(input []byte, key interface{}) ([]byte, error) {
	secret, release, err := secretBytes(key)
	if err != nil {
		return nil, err
	}
	defer release()

	mac := hmac.New(a.hash.New, secret)
	mac.Write(input)
	return mac.Sum(nil), nil
}

// Verify recomputes the digest with Sign and compares in constant time
func (a *HMACAlgorithm) Verify(input, signature []byte, key interface{}) error {
	expected, err := a.Sign(input, key)
	if err != nil {
		return err
	}
	if !hmac.Equal(expected, signature) {
		return ErrInvalidSignature
	}
	return nil
}

func (a *HMACAlgorithm) KeyCheck(key interface{}) error {
	_, release, err := secretBytes(key)
	if err != nil {
		return err
	}
	release()
	return nil
}
