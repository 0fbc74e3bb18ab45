package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohort-tools/api/internal/app/controllers"
	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/middleware"
)

// Options tunes route registration
type Options struct {
	// ProtectAPI requires a token for cohort and student writes
	ProtectAPI bool
	// DocsPage is the HTML file served at /docs
	DocsPage string
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	cohortController *controllers.CohortController,
	studentController *controllers.StudentController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
	opts Options,
) {
	// Writes are open unless ProtectAPI is set
	var writeGuard gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if opts.ProtectAPI {
		writeGuard = authMiddleware.JWTAuth()
	}

	api := router.Group("/api")

	cohorts := api.Group("/cohorts")
	{
		cohorts.GET("", cohortController.ListCohorts)
		cohorts.GET("/:id", cohortController.GetCohort)
		cohorts.GET("/:id/students/export", cohortController.ExportRoster)
		cohorts.POST("", writeGuard, cohortController.CreateCohort)
		cohorts.PUT("/:id", writeGuard, cohortController.UpdateCohort)
		cohorts.DELETE("/:id", writeGuard, cohortController.DeleteCohort)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/cohort/:cohortId", studentController.ListStudentsByCohort)
		students.GET("/:id", studentController.GetStudent)
		students.POST("", writeGuard, studentController.CreateStudent)
		students.POST("/import", writeGuard, studentController.ImportStudents)
		students.PUT("/:id", writeGuard, studentController.UpdateStudent)
		students.DELETE("/:id", writeGuard, studentController.DeleteStudent)
	}

	// --- Authenticated Routes Group ---
	users := api.Group("/users")
	users.Use(authMiddleware.JWTAuth())
	{
		users.GET("/:id", userController.GetUserByID)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/verify", authMiddleware.JWTAuth(), authController.Verify)
		auth.POST("/logout", authMiddleware.JWTAuth(), authController.Logout)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	if opts.DocsPage != "" {
		router.StaticFile("/docs", opts.DocsPage)
	}

	router.NoRoute(middleware.NotFoundHandler())
}
