package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// DefaultTokenTTL is the lifetime of an issued token
const DefaultTokenTTL = 6 * time.Hour

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
}

// Identity is the minimal user identity carried inside a token
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Claims defines JWT token content
type Claims struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies signed identity tokens
type TokenIssuer interface {
	IssueToken(identity Identity) (string, *Claims, error)
	VerifyToken(tokenString string) (*Claims, error)
}

// JWTService handles JWT operations
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	if config.TokenExp <= 0 {
		config.TokenExp = DefaultTokenTTL
	}
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// IssueToken signs an HS256 token for the given identity
func (s *JWTService) IssueToken(identity Identity) (string, *Claims, error) {
	now := s.now()

	claims := &Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Name:   identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   identity.UserID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, claims, nil
}

// VerifyToken validates the signature and time claims and returns the decoded claims
func (s *JWTService) VerifyToken(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from an `Authorization: Bearer <token>` header
func ExtractBearerToken(authHeader string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.ErrTokenInvalid
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", apperrors.ErrTokenInvalid
	}
	return token, nil
}
