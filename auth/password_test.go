package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Hash_And_Verify(t *testing.T) {
	req := require.New(t)

	encoded, err := HashPassword("open-sesame")
	req.NoError(err)
	req.Contains(encoded, "$argon2id$")

	ok, err := VerifyPassword("open-sesame", encoded)
	req.NoError(err)
	req.True(ok)
}

func Test_Verify_Rejects_Wrong_Password(t *testing.T) {
	req := require.New(t)

	encoded, err := HashPassword("open-sesame")
	req.NoError(err)

	ok, err := VerifyPassword("close-sesame", encoded)
	req.NoError(err)
	req.False(ok)
}

func Test_Hashes_Are_Salted(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("open-sesame")
	req.NoError(err)
	second, err := HashPassword("open-sesame")
	req.NoError(err)
	req.NotEqual(first, second)
}

func Test_Verify_Rejects_Malformed_Encoding(t *testing.T) {
	req := require.New(t)

	_, err := VerifyPassword("whatever", "not-an-encoded-hash")
	req.Error(err)
}
