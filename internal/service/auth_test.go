package service

import (
	"errors"
	"testing"
	"time"

	"worklog/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "testsecret",
		JWTAudience:  "authenticated",
		JWTAlgorithm: "HS256",
	}
}

func restoreAuth() {
	loadConfig = config.Get
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-1",
		"aud":   "authenticated",
		"email": "user@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Minute).Unix(),
	}
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreAuth)
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }

	t.Run("valid token", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", baseClaims())
		u, err := VerifyAccessToken(tok)
		require.NoError(t, err)
		require.Equal(t, "user-1", u.ID)
		require.Equal(t, "user@example.com", u.Email)
		require.Equal(t, "authenticated", u.Role)
	})

	t.Run("user_id fallback", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "sub")
		claims["user_id"] = "user-2"
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", claims)
		u, err := VerifyAccessToken(tok)
		require.NoError(t, err)
		require.Equal(t, "user-2", u.ID)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "sub")
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", claims)
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, "othersecret", baseClaims())
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := baseClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", claims)
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := baseClaims()
		claims["aud"] = "other"
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", claims)
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("missing audience", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "aud")
		tok := signToken(t, jwt.SigningMethodHS256, "testsecret", claims)
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("algorithm mismatch", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS512, "testsecret", baseClaims())
		_, err := VerifyAccessToken(tok)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyAccessToken("not-a-token")
		require.Error(t, err)
	})

	t.Run("config error", func(t *testing.T) {
		loadConfig = func() (*config.Config, error) { return nil, errors.New("no secret") }
		t.Cleanup(func() { loadConfig = func() (*config.Config, error) { return testConfig(), nil } })
		_, err := VerifyAccessToken("anything")
		require.Error(t, err)
	})
}
