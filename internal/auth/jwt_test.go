package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Helper()
	require.NoError(t, InitJWTSecret("test-secret"))
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	initTestSecret(t)

	tokenString, err := GenerateJWT(42, "mentor@example.com", "mentor")
	require.NoError(t, err)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["user_id"])
	require.Equal(t, "mentor@example.com", claims["email"])
	require.Equal(t, "mentor", claims["role"])
}

func TestVerifyJWT_Expired(t *testing.T) {
	initTestSecret(t)

	claims := jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString)
	require.Error(t, err)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	initTestSecret(t)

	claims := jwt.MapClaims{
		"user_id": float64(1),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString)
	require.Error(t, err)
}

func TestStateToken_RoundTrip(t *testing.T) {
	initTestSecret(t)

	state, err := GenerateStateToken(7)
	require.NoError(t, err)

	userID, err := VerifyStateToken(state)
	require.NoError(t, err)
	require.Equal(t, uint(7), userID)
}

func TestVerifyStateToken_RejectsSessionToken(t *testing.T) {
	initTestSecret(t)

	// A regular session token must not pass as an OAuth state token.
	tokenString, err := GenerateJWT(7, "learner@example.com", "learner")
	require.NoError(t, err)

	_, err = VerifyStateToken(tokenString)
	require.Error(t, err)
}
