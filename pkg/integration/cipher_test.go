package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecretCipherKeyValidation(t *testing.T) {
	_, err := NewSecretCipher("not-hex")
	assert.Error(t, err)

	_, err = NewSecretCipher("deadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	key, err := GenerateKey()
	require.NoError(t, err)
	assert.Len(t, key, 64)

	_, err = NewSecretCipher(key)
	assert.NoError(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	c, err := NewSecretCipher(key)
	require.NoError(t, err)

	for _, plaintext := range []string{"", "token-123", strings.Repeat("x", 4096)} {
		sealed, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotContains(t, sealed, plaintext)

		got, err := c.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	c, err := NewSecretCipher(key)
	require.NoError(t, err)

	a, err := c.Encrypt("same secret")
	require.NoError(t, err)
	b, err := c.Encrypt("same secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh nonce per encryption")
}

func TestDecryptRejectsTampering(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	c, err := NewSecretCipher(key)
	require.NoError(t, err)

	_, err = c.Decrypt("%%%not-base64%%%")
	assert.Error(t, err)

	_, err = c.Decrypt("c2hvcnQ=")
	assert.Error(t, err)

	sealed, err := c.Encrypt("secret")
	require.NoError(t, err)
	tampered := []byte(sealed)
	if tampered[0] == 'A' {
		tampered[0] = 'B'
	} else {
		tampered[0] = 'A'
	}
	_, err = c.Decrypt(string(tampered))
	assert.Error(t, err)

	otherKey, err := GenerateKey()
	require.NoError(t, err)
	other, err := NewSecretCipher(otherKey)
	require.NoError(t, err)
	_, err = other.Decrypt(sealed)
	assert.Error(t, err)
}
