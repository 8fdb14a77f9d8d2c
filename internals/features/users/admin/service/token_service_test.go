package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"cyberku_backend/internals/configs"
	"cyberku_backend/internals/features/users/admin/model"
)

func TestGenerateAdminToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	admin := &model.AdminModel{ID: 7, Email: "admin@cyberku.id"}
	signed, err := GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tok.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse signed token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "admin@cyberku.id" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if id, ok := claims["id"].(float64); !ok || uint(id) != 7 {
		t.Errorf("id claim = %v", claims["id"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("missing exp claim")
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 50*time.Minute || ttl > time.Hour+time.Minute {
		t.Errorf("token lifetime out of range: %s", ttl)
	}
}

func TestGenerateAdminTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	if _, err := GenerateAdminToken(&model.AdminModel{ID: 1}); err == nil {
		t.Fatal("expected error when JWT secret is empty")
	}
}
