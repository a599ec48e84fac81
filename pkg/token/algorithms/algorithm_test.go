package algorithms

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseAlgorithm(t *testing.T) {
	base := &BaseAlgorithm{
		name:   "TEST256",
		hash:   crypto.SHA256,
		family: FamilyHMAC,
	}

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "TEST256", base.Name())
	})

	t.Run("Hash", func(t *testing.T) {
		assert.Equal(t, crypto.SHA256, base.Hash())
	})

	t.Run("Family", func(t *testing.T) {
		assert.Equal(t, FamilyHMAC, base.Family())
	})

	t.Run("Digest", func(t *testing.T) {
		h := crypto.SHA256.New()
		h.Write([]byte("test message"))
		assert.Equal(t, h.Sum(nil), base.digest([]byte("test message")))
	})
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "hmac", FamilyHMAC.String())
	assert.Equal(t, "rsa", FamilyRSA.String())
	assert.Equal(t, "unknown", Family(0).String())
}
