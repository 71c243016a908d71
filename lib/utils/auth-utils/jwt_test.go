package authutils

import (
	"testing"
	"wfm-backend/config"
	"wfm-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 86400
}

func TestGetToken(t *testing.T) {
	initTestConfig()

	tokenString, err := GetToken("user-1", "Иванов Иван", models.UserRoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, string(models.UserRoleManager), claims["role"])
	require.Equal(t, "Иванов Иван", claims["name"])
}

func TestParseRefreshToken(t *testing.T) {
	initTestConfig()

	tokenString, err := GetRefreshToken("user-1", "Иванов Иван")
	require.NoError(t, err)

	userID, err := ParseRefreshToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	t.Run("чужая подпись отклоняется", func(t *testing.T) {
		config.Conf.Auth.JWTSecret = "other-secret"
		_, err := ParseRefreshToken(tokenString)
		require.Error(t, err)
		config.Conf.Auth.JWTSecret = "test-secret"
	})

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := ParseRefreshToken("not-a-token")
		require.Error(t, err)
	})
}
