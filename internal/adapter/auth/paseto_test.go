package auth

import (
	"testing"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken(t *testing.T) {
	key := paseto.NewV4SymmetricKey()
	ts, err := New(&config.Auth{TokenKey: key.ExportHex()})
	require.NoError(t, err)

	token, err := ts.CreateToken(42)
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), payload.UserID)

	t.Run("Same key in another instance", func(t *testing.T) {
		other, err := New(&config.Auth{TokenKey: key.ExportHex()})
		require.NoError(t, err)
		payload, err := other.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), payload.UserID)
	})

	t.Run("Foreign key", func(t *testing.T) {
		other, err := New(nil)
		require.NoError(t, err)
		_, err = other.VerifyToken(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ts.VerifyToken("v4.local.garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("Bad key", func(t *testing.T) {
		_, err := New(&config.Auth{TokenKey: "zz"})
		assert.Error(t, err)
	})
}
