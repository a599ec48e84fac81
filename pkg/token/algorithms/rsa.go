package algorithms

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
)

// RSAAlgorithm implements the Algorithm interface for RSASSA-PKCS1-v1_5 signatures
type RSAAlgorithm struct {
	BaseAlgorithm
}

// NewRSAAlgorithm creates a new RSA algorithm instance.
// Signing requires a private key; verification accepts a public key,
// a certificate, or a private key whose public half is used.
func NewRSAAlgorithm(name string, hash crypto.Hash) Algorithm {
	return &RSAAlgorithm{
		BaseAlgorithm: BaseAlgorithm{
			name:   name,
			hash:   hash,
			family: FamilyRSA,
		},
	}
}

// Sign signs the digest of input with the private key
func (r *RSAAlgorithm) Sign(input []byte, key interface{}) ([]byte, error) {
	privateKey, err := rsaPrivateKey(key)
	if err != nil {
		return nil, err
	}

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, r.hash, r.digest(input))
	if err != nil {
		// only fails for keys too small to hold the digest
		return nil, ErrInvalidKeyType
	}
	return signature, nil
}

// Verify verifies an RSA signature
func (r *RSAAlgorithm) Verify(input, signature []byte, key interface{}) error {
	publicKey, err := rsaPublicKey(key)
	if err != nil {
		return err
	}

	if err := rsa.VerifyPKCS1v15(publicKey, r.hash, r.digest(input), signature); err != nil {
		return ErrInvalidSignature
	}
	return nil
}

// KeyCheck validates the key for verification
func (r *RSAAlgorithm) KeyCheck(key interface{}) error {
	_, err := rsaPublicKey(key)
	return err
}
