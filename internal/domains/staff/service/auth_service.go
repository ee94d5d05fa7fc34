package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-catalog/internal/domains/staff/model"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/jwt"
)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(username, role string) (string, time.Time, error)
}

// Credentials of the single staff account, from STAFF_USERNAME and
// STAFF_PASSWORD_HASH.
type Credentials struct {
	Username     string
	PasswordHash string
}

type authService struct {
	creds  Credentials
	tokens TokenIssuer
}

func NewAuthService(creds Credentials, tokens TokenIssuer) ServiceInterface {
	return &authService{creds: creds, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	// 1. VALIDATE INPUT
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// 2. VERIFY CREDENTIALS
	// Password is checked even for an unknown username so both failures
	// take the same time.
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		log.Warn().Str("username", req.Username).Msg("staff login rejected")
		return nil, model.ErrInvalidCredentials
	}

	// 3. ISSUE TOKEN
	token, expiresAt, err := s.tokens.GenerateAccessToken(s.creds.Username, jwt.RoleStaff)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("generate access token: %w", err))
	}

	log.Info().Str("username", s.creds.Username).Msg("staff logged in")
	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
