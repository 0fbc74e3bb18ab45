package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

// Fixed client-facing messages
const (
	MsgRouteNotFound  = "This route does not exist"
	MsgTokenInvalid   = "token not provided or not valid"
	MsgInternalError  = "Internal server error. Check the server console"
	MsgInvalidPayload = "Invalid request payload"
)

// ErrorHandler renders the last error attached with c.Error once the handler chain returns
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		HandleAPIError(c, c.Errors.Last().Err)
	}
}

// HandleAPIError maps an error onto a status code and the JSON error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, *dto.ErrorResponse) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	message := func(fallback string) string {
		if hasCustom && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}
	decorate := func(r *dto.ErrorResponse) *dto.ErrorResponse {
		if hasCustom {
			if custom.Field != "" {
				r.WithField(custom.Field)
			}
			if len(custom.Details) > 0 {
				r.WithDetails(custom.Details)
			}
		}
		return r
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeResourceInvalid, message("Specified id is not valid")))
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeInvalidEmail, message("Invalid email")))
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeInvalidPassword, message("Invalid password")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeValidationFailed, message("Validation failed")))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeBadRequest, message(MsgInvalidPayload)))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusBadRequest, decorate(dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")).AsDuplicate())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, message("Unable to authenticate the user"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeExpiredToken, MsgTokenInvalid)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeInvalidToken, MsgTokenInvalid)
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, MsgInternalError)
	}
}

// NotFoundHandler answers unmatched routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeRouteNotFound, MsgRouteNotFound))
	}
}

// Recovery turns panics into a 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, MsgInternalError))
	})
}
