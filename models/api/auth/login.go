package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh токен")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
