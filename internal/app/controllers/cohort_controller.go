package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/models/dto"
	"github.com/cohort-tools/api/internal/app/services"
	"github.com/cohort-tools/api/internal/pkg/roster"
)

// CohortController handles cohort-related operations
type CohortController struct {
	cohortService services.CohortService
	rosterService services.RosterService
	logger        zerolog.Logger
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService, rosterService services.RosterService, logger zerolog.Logger) *CohortController {
	return &CohortController{
		cohortService: cohortService,
		rosterService: rosterService,
		logger:        logger,
	}
}

// ListCohorts returns every cohort
// @Summary List cohorts
// @Description Retrieves all cohorts in insertion order
// @Tags cohorts
// @Produce json
// @Success 200 {array} models.Cohort "Cohorts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts [get]
func (c *CohortController) ListCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.ListCohorts(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	if cohorts == nil {
		cohorts = []*models.Cohort{}
	}
	ctx.JSON(http.StatusOK, cohorts)
}

// CreateCohort handles cohort creation
// @Summary Create a new cohort
// @Description Creates a cohort. program, format and campus must be one of the allowed values; startDate defaults to now and totalHours to 360.
// @Tags cohorts
// @Accept json
// @Produce json
// @Param request body dto.CreateCohortRequest true "Cohort information"
// @Success 201 {object} models.Cohort "Cohort created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate cohortSlug"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var req dto.CreateCohortRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cohort := req.ToModel(time.Now())
	if err := c.cohortService.CreateCohort(ctx.Request.Context(), &cohort); err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, cohort)
}

// GetCohort retrieves a cohort by ID
// @Summary Get cohort by ID
// @Tags cohorts
// @Produce json
// @Param id path string true "Cohort ID"
// @Success 200 {object} models.Cohort "Cohort retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{id} [get]
func (c *CohortController) GetCohort(ctx *gin.Context) {
	cohort, err := c.cohortService.GetCohort(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, cohort)
}

// UpdateCohort applies a partial update
// @Summary Update a cohort
// @Description Updates only the supplied fields and returns the updated cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Param id path string true "Cohort ID"
// @Param request body dto.UpdateCohortRequest true "Fields to update"
// @Success 200 {object} models.Cohort "Cohort updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate cohortSlug"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{id} [put]
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	var req dto.UpdateCohortRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cohort, err := c.cohortService.UpdateCohort(ctx.Request.Context(), ctx.Param("id"), req.ToModel())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, cohort)
}

// DeleteCohort removes a cohort and clears it from its students
// @Summary Delete a cohort
// @Tags cohorts
// @Param id path string true "Cohort ID"
// @Success 204 "Cohort deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{id} [delete]
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	if err := c.cohortService.DeleteCohort(ctx.Request.Context(), ctx.Param("id")); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportRoster downloads the cohort's students as a spreadsheet
// @Summary Export cohort roster
// @Description Returns an xlsx workbook with one row per student of the cohort
// @Tags cohorts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Cohort ID"
// @Success 200 {file} file "Roster workbook"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{id}/students/export [get]
func (c *CohortController) ExportRoster(ctx *gin.Context) {
	cohort, data, err := c.rosterService.ExportCohort(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	c.logger.Debug().Str("cohortID", cohort.ID).Int("bytes", len(data)).Msg("Roster exported")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cohort.Slug+".xlsx"))
	ctx.Data(http.StatusOK, roster.ContentType, data)
}
