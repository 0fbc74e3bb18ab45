package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/auth"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
)

// TokenVerifier checks a raw token, including revocation
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*auth.Claims, error)
}

// AuthMiddleware guards protected routes
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// JWTAuth requires an `Authorization: Bearer <token>` header carrying a valid,
// unexpired, unrevoked token. Rejected tokens all get the same 401 message;
// store failures during verification go to the error handler as a 500.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeTokenNotFound, MsgTokenInvalid))
			return
		}

		claims, err := m.verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if !isTokenError(err) {
				_ = c.Error(err)
				c.Abort()
				return
			}
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Token rejected")
			HandleAPIError(c, err)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, apperrors.ErrTokenInvalid) ||
		errors.Is(err, apperrors.ErrTokenExpired) ||
		errors.Is(err, apperrors.ErrTokenRevoked)
}

// GetClaims returns the claims stored by JWTAuth
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
