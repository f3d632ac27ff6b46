package auth

import (
	"testing"
	"time"

	"roster/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{SecretKey: "test_signing_secret_very_long_for_testing"}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	userID := "507f1f77bcf86cd799439011"

	token, err := svc.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_TokenExpiresIn24Hours(t *testing.T) {
	svc := newTestJWTService(t)

	before := time.Now()
	token, err := svc.Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	after := time.Now()

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	expiry := claims.ExpiresAt.Time
	assert.False(t, expiry.Before(before.Add(24*time.Hour)))
	assert.False(t, expiry.After(after.Add(24*time.Hour)))
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Generate("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	otherCfg := &config.Config{SecretKey: "a_completely_different_secret"}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	claims, err := other.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
