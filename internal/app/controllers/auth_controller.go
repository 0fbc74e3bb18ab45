package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/app/services"
	"github.com/cohort-tools/api/internal/middleware"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Creates a user account. The password needs at least 6 characters with a digit, a lowercase and an uppercase letter.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration information"
// @Success 201 {object} dto.SignupResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid email, weak password or existing user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	c.logger.Debug().Msg("Signup endpoint called")

	var req dto.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SignupResponse{User: dto.NewUserResponse(user)})
}

// Login handles user login
// @Summary Log in
// @Description Exchanges credentials for a signed token valid for 6 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing email or password"
// @Failure 401 {object} dto.ErrorResponse "Unable to authenticate the user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{AuthToken: token})
}

// Verify returns the claims of the presented token
// @Summary Verify token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Claims "Decoded token payload"
// @Failure 401 {object} dto.ErrorResponse "token not provided or not valid"
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		_ = ctx.Error(apperrors.ErrTokenInvalid)
		return
	}
	ctx.JSON(http.StatusOK, claims)
}

// Logout revokes the presented token
// @Summary Log out
// @Description Revokes the token until it expires
// @Tags auth
// @Security BearerAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} dto.ErrorResponse "token not provided or not valid"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		_ = ctx.Error(apperrors.ErrTokenInvalid)
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), claims); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
