package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasher_HashIsStable(t *testing.T) {
	h := New("secret")

	first := h.Hash("p@ssw0rd")
	second := h.Hash("p@ssw0rd")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHasher_HashDiffers(t *testing.T) {
	tests := []struct {
		name           string
		secretA, passA string
		secretB, passB string
	}{
		{"different passwords", "secret", "one", "secret", "two"},
		{"different secrets", "secret-a", "same", "secret-b", "same"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.secretA).Hash(tt.passA)
			b := New(tt.secretB).Hash(tt.passB)
			assert.NotEqual(t, a, b)
		})
	}
}

func TestHasher_Verify(t *testing.T) {
	h := New("secret")
	stored := h.Hash("correct")

	assert.True(t, h.Verify("correct", stored))
	assert.False(t, h.Verify("wrong", stored))
	assert.False(t, h.Verify("correct", "not-hex"))
	assert.False(t, New("other").Verify("correct", stored))
}

func TestHasher_Digest(t *testing.T) {
	h := New("secret")

	assert.Equal(t, h.Digest("token"), h.Digest("token"))
	assert.NotEqual(t, h.Digest("token"), h.Digest("token2"))
	assert.NotEqual(t, h.Digest("token"), New("other").Digest("token"))
	assert.Len(t, h.Digest("token"), 64)

	long := New(strings.Repeat("k", 100))
	assert.NotPanics(t, func() { long.Digest("token") })
}
