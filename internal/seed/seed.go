// Package seed loads the sample cohorts and students into an empty store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models/dto"
	appRepos "github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/app/services"
)

// Files names the JSON documents to load
type Files struct {
	Cohorts  string
	Students string
}

// studentRecord is a seed student. It links to its cohort by slug because ids
// are assigned by the store.
type studentRecord struct {
	dto.CreateStudentRequest
	CohortSlug string `json:"cohortSlug"`
}

// CreateDefaultData inserts the seed cohorts and students when no cohort exists yet.
// Individual records that fail are logged and joined into the returned error.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, svcs *services.Services, files Files, lgr zerolog.Logger) error {
	count, err := repos.Cohorts.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cohorts: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("cohorts", count).Msg("Store already has data, skipping seed")
		return nil
	}

	var cohorts []dto.CreateCohortRequest
	if err := readJSON(files.Cohorts, &cohorts); err != nil {
		return err
	}
	var students []studentRecord
	if err := readJSON(files.Students, &students); err != nil {
		return err
	}

	lgr.Info().Int("cohorts", len(cohorts)).Int("students", len(students)).Msg("Seeding default data...")
	var finalErr error // collect errors without stopping

	slugToID := make(map[string]string, len(cohorts))
	now := time.Now()
	for _, req := range cohorts {
		cohort := req.ToModel(now)
		if err := svcs.Cohorts.CreateCohort(ctx, &cohort); err != nil {
			lgr.Error().Err(err).Str("cohortSlug", req.Slug).Msg("Error creating seed cohort")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		slugToID[cohort.Slug] = cohort.ID
	}

	created := 0
	for _, rec := range students {
		req := rec.CreateStudentRequest
		if rec.CohortSlug != "" {
			id, ok := slugToID[rec.CohortSlug]
			if !ok {
				lgr.Warn().Str("email", req.Email).Str("cohortSlug", rec.CohortSlug).Msg("Seed student references an unknown cohort")
			}
			req.Cohort = id
		}

		student := req.ToModel()
		if err := svcs.Students.CreateStudent(ctx, &student); err != nil {
			lgr.Error().Err(err).Str("email", req.Email).Msg("Error creating seed student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("cohorts", len(slugToID)).Int("students", created).Msg("Default data seeded")
	return finalErr
}

func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return nil
}
