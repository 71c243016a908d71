package authutils

import (
	"time"
	"wfm-backend/config"
	"wfm-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

// ParseRefreshToken - проверка подписи и срока refresh токена
func ParseRefreshToken(tokenString string) (userID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return sub, nil
}
