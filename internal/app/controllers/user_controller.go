package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/app/services"
)

// UserController handles user-related operations
type UserController struct {
	authService services.AuthService
}

// NewUserController creates a new user controller
func NewUserController(authService services.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// GetUserByID retrieves user information by ID
// @Summary Get user by ID
// @Description Retrieves a specific user by their ID, without the password hash
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "token not provided or not valid"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.authService.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}
