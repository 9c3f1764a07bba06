package password

// Package password provides the bcrypt-backed password hasher and verifier.

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for newly hashed passwords.
// Verification reads the cost out of the stored hash, so raising this
// only affects new writes.
const DefaultCost = 12

// maxPlaintextLen is the bcrypt input limit; longer inputs are silently
// truncated by the algorithm, so we reject them at hash time instead.
const maxPlaintextLen = 72

// Bcrypt implements ports.PasswordVerifier plus the hashing side used by
// the provisioning tools. Cost is injectable so tests can use bcrypt.MinCost.
type Bcrypt struct {
	cost int
}

// New creates a Bcrypt hasher/verifier with the given cost. A cost
// outside bcrypt's valid range falls back to DefaultCost.
func New(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash hashes the given plaintext with bcrypt. The output embeds salt
// and cost and is stored as-is in the credential store.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("password cannot be empty")
	}
	if len(plaintext) > maxPlaintextLen {
		return "", fmt.Errorf("password must be %d bytes or fewer", maxPlaintextLen)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch
// or a malformed hash is a legitimate false, never an error; inputs are
// never logged. bcrypt's comparison is constant-time internally.
func (b *Bcrypt) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
