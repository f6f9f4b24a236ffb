package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"sagedo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestAuthService() *AuthServiceImpl {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID},
	}

	return NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
}

// fakeIDToken builds an unsigned JWT with the given claims. Signature
// verification is out of scope here; only claim checks are exercised.
func fakeIDToken(t *testing.T, claims idTokenClaims) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	body := base64.RawURLEncoding.EncodeToString(payload)

	return header + "." + body + ".fake-signature"
}

func validClaims() idTokenClaims {
	return idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "1234567890",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "ravi@gmail.com",
		EmailVerified: true,
		Name:          "Ravi",
		Picture:       "https://lh3.googleusercontent.com/photo.jpg",
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	service := newTestAuthService()

	token := fakeIDToken(t, validClaims())

	user, err := service.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", user.ID)
	assert.Equal(t, "ravi@gmail.com", user.Email)
	assert.Equal(t, "Ravi", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_MalformedToken(t *testing.T) {
	service := newTestAuthService()

	_, err := service.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_WrongIssuer(t *testing.T) {
	service := newTestAuthService()

	claims := validClaims()
	claims.Iss = "https://evil.example.com"

	_, err := service.VerifyIDToken(context.Background(), fakeIDToken(t, claims))
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_WrongAudience(t *testing.T) {
	service := newTestAuthService()

	claims := validClaims()
	claims.Aud = "someone-else.apps.googleusercontent.com"

	_, err := service.VerifyIDToken(context.Background(), fakeIDToken(t, claims))
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_Expired(t *testing.T) {
	service := newTestAuthService()

	claims := validClaims()
	claims.Exp = time.Now().Add(-time.Hour).Unix()

	_, err := service.VerifyIDToken(context.Background(), fakeIDToken(t, claims))
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	service := newTestAuthService()

	claims := validClaims()
	claims.EmailVerified = false

	_, err := service.VerifyIDToken(context.Background(), fakeIDToken(t, claims))
	assert.Error(t, err)
}

func TestBase64Decode_URLSafeWithoutPadding(t *testing.T) {
	// URL-safe alphabet and stripped padding both decode.
	decoded, err := base64Decode("eyJhIjoxfQ")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(decoded))
}
