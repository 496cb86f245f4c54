package token

import (
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/config"
	"MonthlyMasti/pkg/errors"
)

func initTokens(t *testing.T) {
	t.Helper()
	config.Cfg.JWTSecret = "test-secret"
	config.Cfg.JWTExpireMinutes = 30
	config.Cfg.JWTRefreshDays = 7
	require.NoError(t, Init())
}

func TestGenerateTokenPair(t *testing.T) {
	initTokens(t)

	access, refresh, expiresIn, err := GenerateTokenPair("42")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
	assert.Greater(t, expiresIn, 0)

	userID, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "42", userID)
}

func TestRefreshTokensDifferPerIssue(t *testing.T) {
	initTokens(t)

	_, first, _, err := GenerateTokenPair("42")
	require.NoError(t, err)
	_, second, _, err := GenerateTokenPair("42")
	require.NoError(t, err)

	// jti 不同，同一秒签发的两个 refresh token 也不相同
	assert.NotEqual(t, first, second)
}

func TestValidateRejectsAccessTokenAsRefresh(t *testing.T) {
	initTokens(t)

	access, _, _, err := GenerateTokenPair("42")
	require.NoError(t, err)

	_, err = ValidateRefreshToken(access)
	assert.ErrorIs(t, err, errors.ErrInvalidTokenType)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	initTokens(t)

	unsigned := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, Claims{
		UserID:    "42",
		TokenType: "refresh",
	})
	raw, err := unsigned.SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(raw)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	initTokens(t)

	_, err := ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}
