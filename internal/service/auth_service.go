package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"panorama/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles organizer authentication
type AuthService struct {
	organizerUsername string
	organizerPassword string
	jwtSecret         []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("ORGANIZER_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ORGANIZER_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		organizerUsername: username,
		organizerPassword: password,
		jwtSecret:         []byte(secret),
	}
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.organizerUsername || password != s.organizerPassword {
		return nil, ErrInvalidCredentials
	}

	organizerID := "org_" + uuid.New().String()[:8]

	claims := &model.OrganizerClaims{
		OrganizerID: organizerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		OrganizerID: organizerID,
	}, nil
}

// ValidateOrganizerToken parses and validates an organizer JWT
func (s *AuthService) ValidateOrganizerToken(tokenString string) (*model.OrganizerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.OrganizerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.OrganizerClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
