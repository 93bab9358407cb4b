package tokens

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityJWT(t *testing.T) {
	key := []byte("super secret key")
	userID := gofakeit.UUID()

	token, genErr := GenerateIdentityJWT(userID, true, time.Hour, key)
	require.NoError(t, genErr)

	claims, valErr := ValidateIdentityJWT(token, key)
	require.NoError(t, valErr)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.Operator)
}

func TestIdentityJWT_Expired(t *testing.T) {
	key := []byte("super secret key")

	token, genErr := GenerateIdentityJWT(gofakeit.UUID(), false, -time.Minute, key)
	require.NoError(t, genErr)

	_, valErr := ValidateIdentityJWT(token, key)
	require.ErrorIs(t, valErr, ErrTokenExpired)
}

func TestIdentityJWT_WrongKey(t *testing.T) {
	token, genErr := GenerateIdentityJWT(gofakeit.UUID(), false, time.Hour, []byte("key one"))
	require.NoError(t, genErr)

	_, valErr := ValidateIdentityJWT(token, []byte("key two"))
	require.Error(t, valErr)
}
