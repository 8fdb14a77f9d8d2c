package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"cyberku_backend/internals/configs"
	"cyberku_backend/internals/features/users/admin/model"
)

const tokenLifetime = time.Hour

// GenerateAdminToken membuat JWT HS256 berumur 1 jam untuk admin yang login.
func GenerateAdminToken(admin *model.AdminModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum di-set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
