package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateUserToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.SubjectID)
	assert.False(t, claims.IsAdmin)
}

func TestAdminTokenCarriesAdminClaim(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateAdminToken(7)
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.SubjectID)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateUserToken(3)
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.SubjectID)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-a").GenerateUserToken(5)
	require.NoError(t, err)

	_, err = SetupAuth("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.generateToken(5, false, -time.Minute)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := SetupAuth("test-secret")

	for _, raw := range []string{"", "   ", "Bearer ", "not-a-token", "Bearer not.a.token"} {
		_, err := auth.VerifyToken(raw)
		assert.Error(t, err, "token %q should be rejected", raw)
	}
}

func TestGenerateTokenRequiresSubject(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateUserToken(0)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	auth := SetupAuth("test-secret")

	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.NoError(t, auth.VerifyPassword("hunter22", hashed))
	assert.Error(t, auth.VerifyPassword("hunter23", hashed))
}
