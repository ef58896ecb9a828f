package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTCustomClaims is the access token payload. The subject claim is the
// student's username.
type JWTCustomClaims struct {
	Grade string `json:"grade,omitempty"`
	jwt.RegisteredClaims
}

type ContextKey string

const (
	StudentKey ContextKey = "student"
)
