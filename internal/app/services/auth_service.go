package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/auth"
	"github.com/cohort-tools/api/internal/pkg/validation"
)

// MsgAuthenticationFailed is returned for every failed login
const MsgAuthenticationFailed = "Unable to authenticate the user"

// AuthService defines signup, login and token lifecycle operations
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	hasher     auth.PasswordHasher
	tokens     auth.TokenIssuer
	revocation auth.RevocationList
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenIssuer,
	revocation auth.RevocationList,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
		revocation: revocation,
		logger:     logger,
	}
}

// Signup validates the credentials, hashes the password and stores the user
func (s *authService) Signup(ctx context.Context, email, password, name string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, apperrors.NewValidationError("", validation.MsgMissingSignupFields)
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, validation.MsgInvalidEmail).WithField("email")
	}
	if validation.IsPasswordTooLong(password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPassword, validation.MsgPasswordTooLong).WithField("password")
	}
	if !validation.IsStrongPassword(password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPassword, validation.MsgWeakPassword).WithField("password")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, Name: name, PasswordHash: digest}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Msg("User signed up")
	return user, nil
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", apperrors.NewValidationError("", validation.MsgMissingLoginFields)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Debug().Msg("Login attempt for unknown email")
			return "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgAuthenticationFailed)
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Debug().Str("userID", user.ID).Msg("Login attempt with wrong password")
		return "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgAuthenticationFailed)
	}

	token, _, err := s.tokens.IssueToken(auth.Identity{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// VerifyToken checks the signature, expiry and revocation status of a token
func (s *authService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	if claims.ID != "" {
		revoked, err := s.revocation.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking token revocation: %w", err)
		}
		if revoked {
			return nil, apperrors.ErrTokenRevoked
		}
	}
	return claims, nil
}

// Logout revokes the token until it would have expired anyway
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrTokenInvalid
	}

	expiresAt := time.Now().Add(auth.DefaultTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revocation.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}

	s.logger.Info().Str("userID", claims.UserID).Msg("User logged out")
	return nil
}

// GetUser returns a user by id
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
