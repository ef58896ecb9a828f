package service

import (
	"errors"
	"fmt"
	"time"

	"flash_learning/internal/config"
	"flash_learning/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and checks the HS256 access tokens that sign a
// student in. The token subject is the username.
type TokenService interface {
	IssueAccessToken(student *model.Student) (string, error)
	VerifyAccessToken(tokenString string) (string, error)
}

type tokenService struct {
	cfg *config.Config
	now func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) IssueAccessToken(student *model.Student) (string, error) {
	if student == nil || student.Username == "" {
		return "", model.NewAppError("INVALID_INPUT", "A username is required to issue a token.", "username", model.ErrInvalidInput)
	}
	if s.cfg.JWT.SecretKey == "" {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "JWT secret key is not configured.", "", model.ErrInternalServer)
	}

	now := s.now()
	claims := &model.JWTCustomClaims{
		Grade: student.Grade,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   student.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Could not sign the access token.", "", err)
	}
	return signedToken, nil
}

func (s *tokenService) VerifyAccessToken(tokenString string) (string, error) {
	claims := &model.JWTCustomClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.JWT.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("tokenService.VerifyAccessToken: %w", err)
	}
	if !token.Valid {
		return "", errors.New("tokenService.VerifyAccessToken: token is not valid")
	}
	if claims.Subject == "" {
		return "", errors.New("tokenService.VerifyAccessToken: token has no subject")
	}
	return claims.Subject, nil
}
