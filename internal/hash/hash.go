// Package hash derives deterministic keyed digests from the server secret.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hasher produces password hashes and refresh token digests keyed by the server secret.
type Hasher struct {
	key []byte
}

// New creates a Hasher keyed by secret.
func New(secret string) *Hasher {
	return &Hasher{key: []byte(secret)}
}

// Hash returns hex(HMAC-SHA256(secret, password)). The same input always yields the same output.
func (h *Hasher) Hash(password string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether password hashes to stored, in constant time.
func (h *Hasher) Verify(password, stored string) bool {
	expected, err := hex.DecodeString(stored)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), expected)
}

// Digest returns a keyed BLAKE2b-256 digest of token, used to store refresh tokens
// without keeping the bearer value itself.
func (h *Hasher) Digest(token string) string {
	key := h.key
	if len(key) > blake2b.Size {
		sum := sha256.Sum256(key)
		key = sum[:]
	}
	d, err := blake2b.New256(key)
	if err != nil {
		// only reachable with a key longer than 64 bytes, which is shortened above
		panic(err)
	}
	d.Write([]byte(token))
	return hex.EncodeToString(d.Sum(nil))
}
