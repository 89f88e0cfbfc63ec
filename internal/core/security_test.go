// AngelaMos | 2026
// security_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	valid, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right password")
	require.NoError(t, err)

	valid, err := VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)

	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-an-encoded-hash")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafe_NilHash(t *testing.T) {
	valid, rehash, err := VerifyPasswordTimingSafe("anything", nil)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, rehash)
}

func TestVerifyPasswordTimingSafe_Valid(t *testing.T) {
	hash, err := HashPassword("s3cret-value")
	require.NoError(t, err)

	valid, rehash, err := VerifyPasswordTimingSafe("s3cret-value", &hash)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, rehash)
}
