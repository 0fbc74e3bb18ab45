package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/app/services"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
	rosterService  services.RosterService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, rosterService services.RosterService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		rosterService:  rosterService,
		logger:         logger,
	}
}

func (c *StudentController) respondList(ctx *gin.Context, students []*models.Student, err error) {
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if students == nil {
		students = []*models.Student{}
	}
	ctx.JSON(http.StatusOK, students)
}

// ListStudents returns every student
// @Summary List students
// @Description Retrieves all students. The cohort field is expanded unless populate=false.
// @Tags students
// @Produce json
// @Param populate query bool false "Expand the cohort reference" default(true)
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context(), populateParam(ctx))
	c.respondList(ctx, students, err)
}

// ListStudentsByCohort returns the students of a cohort
// @Summary List students of a cohort
// @Tags students
// @Produce json
// @Param cohortId path string true "Cohort ID"
// @Param populate query bool false "Expand the cohort reference" default(true)
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/cohort/{cohortId} [get]
func (c *StudentController) ListStudentsByCohort(ctx *gin.Context) {
	students, err := c.studentService.ListStudentsByCohort(ctx.Request.Context(), ctx.Param("cohortId"), populateParam(ctx))
	c.respondList(ctx, students, err)
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Param populate query bool false "Expand the cohort reference" default(true)
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"), populateParam(ctx))
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student. cohort must reference an existing cohort when given.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} models.Student "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown cohort or duplicate email"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student := req.ToModel()
	if err := c.studentService.CreateStudent(ctx.Request.Context(), &student); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent applies a partial update
// @Summary Update a student
// @Description Updates only the supplied fields. Sending "cohort": null removes the cohort reference.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown cohort or duplicate email"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), req.ToModel())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Param id path string true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ImportStudents creates students from an uploaded spreadsheet
// @Summary Import students from xlsx
// @Description The first row is a header. Rows that fail validation or duplicate an email are skipped.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx roster"
// @Param cohortId formData string false "Cohort assigned to every imported student"
// @Success 200 {object} dto.ImportStudentsResponse "Import summary"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file, or unknown cohort"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		_ = ctx.Error(apperrors.NewValidationError("file", "An xlsx file is required in the file field"))
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = ctx.Error(apperrors.NewBadRequestError("Uploaded file could not be read"))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing uploaded file")
		}
	}()

	c.logger.Debug().Str("filename", header.Filename).Int64("size", header.Size).Msg("Roster upload received")

	result, err := c.rosterService.ImportStudents(ctx.Request.Context(), file, ctx.PostForm("cohortId"))
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportStudentsResponse{
		Message:       "Students imported",
		ImportedCount: result.Imported,
		Skipped:       result.Skipped,
		CohortID:      result.CohortID,
	})
}
