package secrets

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestOpenKeeper(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)
		assert.NoError(t, keeper.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open secrets keeper")
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		keeper, err := OpenKeeper(ctx, "  ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, keeper)
	})
}

func TestEncryptDecryptString(t *testing.T) {
	ctx := context.Background()
	keeper, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, keeper.Close())
	}()

	encoded, err := EncryptString(ctx, keeper, "client-secret-value")
	require.NoError(t, err)
	assert.NotContains(t, encoded, "client-secret-value")

	plaintext, err := DecryptString(ctx, keeper, encoded)
	require.NoError(t, err)
	assert.Equal(t, "client-secret-value", plaintext)

	t.Run("Error_NotBase64", func(t *testing.T) {
		_, err := DecryptString(ctx, keeper, "not base64!")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		_, err := DecryptString(ctx, keeper, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_WrongKey", func(t *testing.T) {
		other, err := OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, other.Close())
		}()

		_, err = DecryptString(ctx, other, encoded)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decrypt value")
	})
}

func TestResolveSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("PlaintextWithoutKeeper", func(t *testing.T) {
		value, err := ResolveSecret(ctx, "", "plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", value)
	})

	t.Run("DecryptsWithKeeper", func(t *testing.T) {
		keyURI := generateLocalSecretsURI(t)
		keeper, err := OpenKeeper(ctx, keyURI)
		require.NoError(t, err)
		encoded, err := EncryptString(ctx, keeper, "s3cret")
		require.NoError(t, err)
		require.NoError(t, keeper.Close())

		value, err := ResolveSecret(ctx, keyURI, encoded)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", value)
	})

	t.Run("Error_InvalidKeeper", func(t *testing.T) {
		_, err := ResolveSecret(ctx, "invalid://uri", "c2VjcmV0")
		assert.Error(t, err)
	})
}
