package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// CohortService defines the cohort use cases
type CohortService interface {
	ListCohorts(ctx context.Context) ([]*models.Cohort, error)
	GetCohort(ctx context.Context, id string) (*models.Cohort, error)
	CreateCohort(ctx context.Context, cohort *models.Cohort) error
	UpdateCohort(ctx context.Context, id string, update models.CohortUpdate) (*models.Cohort, error)
	DeleteCohort(ctx context.Context, id string) error
}

type cohortService struct {
	cohortRepo  repositories.CohortRepository
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
}

// NewCohortService creates a new cohort service
func NewCohortService(cohortRepo repositories.CohortRepository, studentRepo repositories.StudentRepository, logger zerolog.Logger) CohortService {
	return &cohortService{
		cohortRepo:  cohortRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	}
	return nil
}

func validateEnum(field string, value interface{ IsValid() bool }, raw string) error {
	if raw != "" && !value.IsValid() {
		return apperrors.NewValidationError(field, fmt.Sprintf("%q is not a valid %s", raw, field))
	}
	return nil
}

func validateCohort(c *models.Cohort) error {
	for _, f := range []struct{ name, value string }{
		{"cohortSlug", c.Slug},
		{"cohortName", c.Name},
		{"programManager", c.ProgramManager},
		{"leadTeacher", c.LeadTeacher},
	} {
		if err := requireText(f.name, f.value); err != nil {
			return err
		}
	}
	if err := validateEnum("program", c.Program, string(c.Program)); err != nil {
		return err
	}
	if err := validateEnum("format", c.Format, string(c.Format)); err != nil {
		return err
	}
	if err := validateEnum("campus", c.Campus, string(c.Campus)); err != nil {
		return err
	}
	if c.TotalHours < 0 {
		return apperrors.NewValidationError("totalHours", "totalHours must not be negative")
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return apperrors.NewValidationError("endDate", "endDate must not be before startDate")
	}
	return nil
}

// ListCohorts returns every cohort
func (s *cohortService) ListCohorts(ctx context.Context) ([]*models.Cohort, error) {
	return s.cohortRepo.List(ctx)
}

// GetCohort returns one cohort
func (s *cohortService) GetCohort(ctx context.Context, id string) (*models.Cohort, error) {
	return s.cohortRepo.GetByID(ctx, id)
}

// CreateCohort validates and stores a new cohort
func (s *cohortService) CreateCohort(ctx context.Context, cohort *models.Cohort) error {
	if cohort.StartDate.IsZero() {
		cohort.StartDate = time.Now().UTC()
	}
	if err := validateCohort(cohort); err != nil {
		return err
	}

	if err := s.cohortRepo.Create(ctx, cohort); err != nil {
		return err
	}
	s.logger.Info().Str("cohortID", cohort.ID).Str("cohortSlug", cohort.Slug).Msg("Cohort created")
	return nil
}

// UpdateCohort applies a partial update, validating the merged result
func (s *cohortService) UpdateCohort(ctx context.Context, id string, update models.CohortUpdate) (*models.Cohort, error) {
	current, err := s.cohortRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	update.Apply(&merged)
	if err := validateCohort(&merged); err != nil {
		return nil, err
	}

	return s.cohortRepo.Update(ctx, id, update)
}

// DeleteCohort removes a cohort and clears the cohort reference of its students
func (s *cohortService) DeleteCohort(ctx context.Context, id string) error {
	if err := s.cohortRepo.Delete(ctx, id); err != nil {
		return err
	}

	cleared, err := s.studentRepo.ClearCohort(ctx, id)
	if err != nil {
		return fmt.Errorf("cohort %s deleted but clearing student references failed: %w", id, err)
	}
	s.logger.Info().Str("cohortID", id).Int64("studentsCleared", cleared).Msg("Cohort deleted")
	return nil
}
