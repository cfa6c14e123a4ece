package model

import "github.com/golang-jwt/jwt/v5"

// OrganizerClaims are JWT claims for organizer authentication
type OrganizerClaims struct {
	OrganizerID string `json:"organizerId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for organizer login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token       string `json:"token"`
	OrganizerID string `json:"organizerId"`
}
