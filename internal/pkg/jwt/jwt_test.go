package jwt

import (
	"context"
	"testing"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	profileID := "profile-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "a@b.com", &profileID, profile.TypeBusiness, true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "a@b.com", claims["email"])
	assert.Equal(t, "profile-1", claims["profile_id"])
	assert.Equal(t, "business", claims["user_type"])
	assert.Equal(t, true, claims["approved"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenNilProfile(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "a@b.com", nil, profile.TypeContractor, false)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["profile_id"])
	assert.Equal(t, false, claims["approved"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "a@b.com", nil, profile.TypeBusiness, true)
	assert.Error(t, err)
}

func TestStreamTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, expiresIn, err := svc.GenerateStreamToken("profile-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	subject, err := svc.ValidateStreamToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", subject)
}

func TestValidateStreamTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	accessToken, _, err := svc.GenerateAccessToken("user-1", "a@b.com", nil, profile.TypeBusiness, true)
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(accessToken)
	assert.Error(t, err)
}

func TestValidateStreamTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateStreamToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("token-value", 1893456000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
