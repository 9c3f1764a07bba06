package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Low cost keeps the hashing tests fast.
func fastBcrypt() *Bcrypt {
	return New(bcrypt.MinCost)
}

func TestHashAndVerify(t *testing.T) {
	b := fastBcrypt()

	hash, err := b.Hash("tr0ub4dor&3")
	require.NoError(t, err)
	assert.NotEqual(t, "tr0ub4dor&3", hash)

	assert.True(t, b.Verify(hash, "tr0ub4dor&3"))
	assert.False(t, b.Verify(hash, "tr0ub4dor&4"))
	assert.False(t, b.Verify(hash, ""))
}

func TestHashRejectsEmptyAndOversized(t *testing.T) {
	b := fastBcrypt()

	_, err := b.Hash("")
	assert.Error(t, err)

	// bcrypt silently truncates beyond 72 bytes; reject instead.
	_, err = b.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)

	_, err = b.Hash(strings.Repeat("x", 72))
	assert.NoError(t, err)
}

func TestVerifyGarbageHash(t *testing.T) {
	b := fastBcrypt()
	assert.False(t, b.Verify("not-a-bcrypt-hash", "anything"))
	assert.False(t, b.Verify("", "anything"))
}

func TestVerifyHonorsStoredCost(t *testing.T) {
	// A hash produced at one cost verifies regardless of the verifier's
	// configured cost for new hashes.
	low := New(bcrypt.MinCost)
	hash, err := low.Hash("pw")
	require.NoError(t, err)

	high := New(DefaultCost)
	assert.True(t, high.Verify(hash, "pw"))
}

func TestNewClampsInvalidCost(t *testing.T) {
	assert.Equal(t, DefaultCost, New(0).cost)
	assert.Equal(t, DefaultCost, New(-5).cost)
	assert.Equal(t, DefaultCost, New(100).cost)
	assert.Equal(t, bcrypt.MinCost, New(bcrypt.MinCost).cost)
}
