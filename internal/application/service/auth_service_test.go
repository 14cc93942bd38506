package service

import (
	"testing"
	"time"

	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/santhoshsharuk/billing-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTManager() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", "billing-api-test", time.Hour)
}

func TestLogin_PlaintextPassword(t *testing.T) {
	svc := NewAuthService(&config.AuthConfig{
		Username: "admin",
		Password: "letmein",
	}, testJWTManager())

	result, err := svc.Login("admin", "letmein")
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Username)
	assert.NotEmpty(t, result.Token)

	_, err = svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "letmein")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogin_HashedPasswordWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&config.AuthConfig{
		Username:     "admin",
		Password:     "letmein",
		PasswordHash: string(hash),
	}, testJWTManager())

	// The hash takes precedence over the bootstrap plaintext.
	_, err = svc.Login("admin", "letmein")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	result, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	jwtManager := testJWTManager()
	svc := NewAuthService(&config.AuthConfig{Username: "admin", Password: "letmein"}, jwtManager)

	result, err := svc.Login("admin", "letmein")
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}
