package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "ops@njv.in")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.OperatorID)
	assert.Equal(t, "ops@njv.in", claims.Email)
}

func TestAccessTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour, time.Hour).GenerateAccessToken(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour, time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredAccessToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, time.Hour)
	token, err := m.GenerateAccessToken(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	id := uuid.New()

	token, err := m.GenerateRefreshToken(id)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateReferenceNo(t *testing.T) {
	ref := GenerateReferenceNo("NJV")
	assert.True(t, strings.HasPrefix(ref, "NJV-"))
	assert.Len(t, ref, len("NJV-")+8)
	assert.Equal(t, strings.ToUpper(ref), ref)
}
