package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityTokenRoundTrip(t *testing.T) {
	secret := []byte("SECRET")

	token, err := GenerateIdentityToken(secret, 3600, "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	assert.NoError(t, err)

	identity, err := ParseIdentity(secret, token)
	assert.NoError(t, err)
	// identities are lowercased at issuance
	assert.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", identity)
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := []byte("SECRET")

	token, err := GenerateIdentityToken(secret, -1, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.NoError(t, err)

	_, err = ParseIdentity(secret, token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateIdentityToken([]byte("SECRET"), 3600, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.NoError(t, err)

	_, err = ParseIdentity([]byte("OTHER"), token)
	assert.Error(t, err)
}
