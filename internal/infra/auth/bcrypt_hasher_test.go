package auth

import (
	"testing"

	"roster/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps hashing fast in tests.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "Secret123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Round-trip: the same plaintext always verifies against its digest.
	assert.True(t, hasher.Check(password, hash))

	// A different plaintext always fails.
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_Check_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	hash, err := hasher.Hash("Secret123")
	assert.NoError(t, err)

	// Empty password
	assert.False(t, hasher.Check("", hash))

	// Invalid digest
	assert.False(t, hasher.Check("Secret123", "not-a-bcrypt-digest"))
}

func TestBcryptHasher_DigestEmbedsCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("Secret123")
	assert.NoError(t, err)

	// The digest carries its own cost parameter, so verification needs no
	// separately stored state.
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_TwoHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	first, err := hasher.Hash("Secret123")
	assert.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	assert.NoError(t, err)

	// Fresh salt per digest.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Secret123", first))
	assert.True(t, hasher.Check("Secret123", second))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Secret123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}
