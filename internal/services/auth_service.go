package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService is a stand-in for a real identity provider: one hard-coded
// admin credential pair, exchanged for a signed token.
type AuthService struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
}

func (s *AuthService) Login(email, password string) (string, *domain.AdminUser, error) {
	if email != s.AdminEmail || password != s.AdminPassword {
		return "", nil, ErrInvalidCredentials
	}
	user := &domain.AdminUser{
		ID:    1,
		Email: s.AdminEmail,
		Name:  "Admin User",
		Role:  "super_admin",
	}
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// Verify checks a token issued by Login and returns the admin email.
func (s *AuthService) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(s.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCredentials
	}
	m, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	email, _ := m["email"].(string)
	return email, nil
}
