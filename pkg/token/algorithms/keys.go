package algorithms

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/golang-jwt/jwt/v5"
)

// secretBytes coerces an HMAC key to bytes. Caller-owned slices are used as-is;
// strings are copied into a scratch buffer that release zeroes.
// PEM-encoded material is never accepted as a shared secret, so a public key
// configured for RS256 cannot verify an HS256 token.
func secretBytes(key interface{}) (secret []byte, release func(), err error) {
	switch k := key.(type) {
	case []byte:
		if len(k) == 0 || looksLikePEM(k) {
			return nil, nil, ErrInvalidKeyType
		}
		return k, func() {}, nil
	case string:
		if k == "" {
			return nil, nil, ErrInvalidKeyType
		}
		buf := []byte(k)
		if looksLikePEM(buf) {
			clear(buf)
			return nil, nil, ErrInvalidKeyType
		}
		return buf, func() { clear(buf) }, nil
	default:
		return nil, nil, ErrInvalidKeyType
	}
}

var pemPrefix = []byte("-----BEGIN")

func looksLikePEM(data []byte) bool {
	if bytes.HasPrefix(bytes.TrimSpace(data), pemPrefix) {
		return true
	}
	block, _ := pem.Decode(data)
	return block != nil
}

func rsaPrivateKey(key interface{}) (*rsa.PrivateKey, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		if k == nil {
			return nil, ErrInvalidKeyType
		}
		return k, nil
	case []byte:
		return parsePrivatePEM(k)
	case string:
		return parsePrivatePEM([]byte(k))
	default:
		return nil, ErrInvalidKeyType
	}
}

// rsaPublicKey accepts anything that carries an RSA public key: the key itself,
// a certificate, a private key, or their PEM encodings.
func rsaPublicKey(key interface{}) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		if k == nil {
			return nil, ErrInvalidKeyType
		}
		return k, nil
	case *rsa.PrivateKey:
		if k == nil {
			return nil, ErrInvalidKeyType
		}
		return &k.PublicKey, nil
	case *x509.Certificate:
		if k == nil {
			return nil, ErrInvalidKeyType
		}
		pub, ok := k.PublicKey.(*rsa.PublicKey)
		if !ok {
			return nil, ErrInvalidKeyType
		}
		return pub, nil
	case []byte:
		return parsePublicPEM(k)
	case string:
		return parsePublicPEM([]byte(k))
	default:
		return nil, ErrInvalidKeyType
	}
}

func parsePrivatePEM(data []byte) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, ErrInvalidKeyType
	}
	return key, nil
}

func parsePublicPEM(data []byte) (*rsa.PublicKey, error) {
	if key, err := jwt.ParseRSAPublicKeyFromPEM(data); err == nil {
		return key, nil
	}
	key, err := parsePrivatePEM(data)
	if err != nil {
		return nil, err
	}
	return &key.PublicKey, nil
}
