package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"
)

const testSecret = "TOPSECRETTTTT"

// testPayload mirrors a typical payment-notification claim set; numbers are
// float64 so the decoded map compares equal to the input.
func testPayload() map[string]interface{} {
	return map[string]interface{}{
		"iss": "my_issurer",
		"aud": "World",
		"iat": float64(1400062400223),
		"typ": "/online/transactionstatus/v2",
		"request": map[string]interface{}{
			"myTransactionId":       "[myTransactionId]",
			"merchantTransactionId": "[merchantTransactionId]",
			"status":                "SUCCESS",
		},
	}
}

type rsaKeys struct {
	private    *rsa.PrivateKey
	privatePEM string
	publicPEM  string
	certPEM    string
}

var (
	rsaOnce    sync.Once
	rsaFixture rsaKeys
)

func testRSAKeys(t testing.TB) rsaKeys {
	t.Helper()
	rsaOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			panic(err)
		}
		tmpl := &x509.Certificate{
			SerialNumber: big.NewInt(1),
			Subject:      pkix.Name{CommonName: "token-test"},
			NotBefore:    time.Now().Add(-time.Hour),
			NotAfter:     time.Now().Add(24 * time.Hour),
		}
		cert, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
		if err != nil {
			panic(err)
		}
		rsaFixture = rsaKeys{
			private: key,
			privatePEM: string(pem.EncodeToMemory(&pem.Block{
				Type:  "RSA PRIVATE KEY",
				Bytes: x509.MarshalPKCS1PrivateKey(key),
			})),
			publicPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
			certPEM:   string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert})),
		}
	})
	return rsaFixture
}

// flipChar replaces the character at i with a different base64url character
func flipChar(s string, i int) string {
	replacement := byte('A')
	if s[i] == 'A' {
		replacement = 'B'
	}
	return s[:i] + string(replacement) + s[i+1:]
}

func segments(t *testing.T, token string) []string {
	t.Helper()
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}
	return parts
}
