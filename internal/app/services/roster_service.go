package services

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/roster"
)

// ImportResult summarizes a roster import
type ImportResult struct {
	Imported int
	Skipped  int
	CohortID string
}

// RosterService imports and exports student rosters as spreadsheets
type RosterService interface {
	ImportStudents(ctx context.Context, r io.Reader, cohortID string) (*ImportResult, error)
	ExportCohort(ctx context.Context, cohortID string) (*models.Cohort, []byte, error)
}

type rosterService struct {
	students StudentService
	cohorts  CohortService
	logger   zerolog.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(students StudentService, cohorts CohortService, logger zerolog.Logger) RosterService {
	return &rosterService{
		students: students,
		cohorts:  cohorts,
		logger:   logger,
	}
}

// ImportStudents creates one student per valid row. Rows that fail validation
// or collide with an existing email are skipped and counted.
func (s *rosterService) ImportStudents(ctx context.Context, r io.Reader, cohortID string) (*ImportResult, error) {
	if cohortID != "" {
		if _, err := s.cohorts.GetCohort(ctx, cohortID); err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
				return nil, apperrors.NewValidationError("cohortId", "Referenced cohort does not exist")
			}
			return nil, err
		}
	}

	rows, err := roster.Read(r)
	if err != nil {
		if errors.Is(err, roster.ErrMissingHeader) || errors.Is(err, roster.ErrNoSheets) {
			return nil, apperrors.NewValidationError("file", err.Error())
		}
		return nil, apperrors.NewBadRequestError("Uploaded file is not a readable xlsx workbook")
	}

	result := &ImportResult{CohortID: cohortID}
	for _, row := range rows {
		student := row.Student
		student.Cohort = models.NewCohortRef(cohortID)

		err := s.students.CreateStudent(ctx, &student)
		switch {
		case err == nil:
			result.Imported++
		case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrResourceAlreadyExists):
			s.logger.Debug().Int("line", row.Line).Err(err).Msg("Skipping roster row")
			result.Skipped++
		default:
			return nil, err
		}
	}

	s.logger.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).
		Str("cohortID", cohortID).Msg("Roster imported")
	return result, nil
}

// ExportCohort renders the students of a cohort as an xlsx workbook
func (s *rosterService) ExportCohort(ctx context.Context, cohortID string) (*models.Cohort, []byte, error) {
	cohort, err := s.cohorts.GetCohort(ctx, cohortID)
	if err != nil {
		return nil, nil, err
	}

	students, err := s.students.ListStudentsByCohort(ctx, cohortID, false)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := roster.Write(&buf, students); err != nil {
		return nil, nil, err
	}
	return cohort, buf.Bytes(), nil
}
