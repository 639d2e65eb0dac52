package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	require.NoError(t, hasher.Compare(hash, "admin123"))
	require.Error(t, hasher.Compare(hash, "admin124"))
}
