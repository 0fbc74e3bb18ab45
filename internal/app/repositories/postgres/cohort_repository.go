package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/dberrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

var cohortColumns = []string{
	"id::text", "cohort_slug", "cohort_name", "program", "format", "campus",
	"start_date", "end_date", "in_progress", "program_manager", "lead_teacher", "total_hours",
}

// CohortRepository handles database operations for cohorts
type CohortRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(db *pgxpool.Pool) *CohortRepository {
	return &CohortRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanCohort(row pgx.Row) (*models.Cohort, error) {
	var (
		c                       models.Cohort
		program, format, campus string
	)
	err := row.Scan(
		&c.ID, &c.Slug, &c.Name, &program, &format, &campus,
		&c.StartDate, &c.EndDate, &c.InProgress, &c.ProgramManager, &c.LeadTeacher, &c.TotalHours,
	)
	if err != nil {
		return nil, err
	}
	c.Program = models.Program(program)
	c.Format = models.Format(format)
	c.Campus = models.Campus(campus)
	return &c, nil
}

func (r *CohortRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Cohort, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cohort query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying cohorts")
		return nil, fmt.Errorf("error listing cohorts: %w", err)
	}
	defer rows.Close()

	cohorts := make([]*models.Cohort, 0)
	for rows.Next() {
		c, err := scanCohort(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning cohort row: %w", err)
		}
		cohorts = append(cohorts, c)
	}
	return cohorts, rows.Err()
}

// List returns every cohort
func (r *CohortRepository) List(ctx context.Context) ([]*models.Cohort, error) {
	return r.query(ctx, r.sb.Select(cohortColumns...).From("cohorts").OrderBy("created_at"))
}

// GetByIDs returns the cohorts found among ids; malformed ids are ignored
func (r *CohortRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Cohort, error) {
	valid := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			valid = append(valid, u)
		}
	}
	if len(valid) == 0 {
		return []*models.Cohort{}, nil
	}
	return r.query(ctx, r.sb.Select(cohortColumns...).From("cohorts").Where(squirrel.Eq{"id": valid}))
}

// GetByID retrieves a cohort by id
func (r *CohortRepository) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(cohortColumns...).From("cohorts").Where(squirrel.Expr("id = ?", uid)).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get cohort query: %w", err)
	}

	c, err := scanCohort(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}
	return c, nil
}

// Create inserts a cohort with a freshly generated id
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	id := uuid.New()
	if cohort.StartDate.IsZero() {
		cohort.StartDate = time.Now().UTC()
	}

	sql, args, err := r.sb.Insert("cohorts").
		Columns("id", "cohort_slug", "cohort_name", "program", "format", "campus",
			"start_date", "end_date", "in_progress", "program_manager", "lead_teacher", "total_hours").
		Values(id, cohort.Slug, cohort.Name, string(cohort.Program), string(cohort.Format), string(cohort.Campus),
			cohort.StartDate, cohort.EndDate, cohort.InProgress, cohort.ProgramManager, cohort.LeadTeacher, cohort.TotalHours).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create cohort query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, cohortSlugConstraint) {
			logger.Warn().Str("cohortSlug", cohort.Slug).Msg("Attempted to create duplicate cohort")
			return apperrors.ErrCohortAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create cohort query")
		return fmt.Errorf("error creating cohort: %w", err)
	}

	cohort.ID = id.String()
	return nil
}

func cohortSetMap(u models.CohortUpdate) map[string]interface{} {
	set := map[string]interface{}{}
	if u.Slug != nil {
		set["cohort_slug"] = *u.Slug
	}
	if u.Name != nil {
		set["cohort_name"] = *u.Name
	}
	if u.Program != nil {
		set["program"] = string(*u.Program)
	}
	if u.Format != nil {
		set["format"] = string(*u.Format)
	}
	if u.Campus != nil {
		set["campus"] = string(*u.Campus)
	}
	if u.StartDate != nil {
		set["start_date"] = *u.StartDate
	}
	switch {
	case u.ClearEndDate:
		set["end_date"] = nil
	case u.EndDate != nil:
		set["end_date"] = *u.EndDate
	}
	if u.InProgress != nil {
		set["in_progress"] = *u.InProgress
	}
	if u.ProgramManager != nil {
		set["program_manager"] = *u.ProgramManager
	}
	if u.LeadTeacher != nil {
		set["lead_teacher"] = *u.LeadTeacher
	}
	if u.TotalHours != nil {
		set["total_hours"] = *u.TotalHours
	}
	return set
}

// Update applies a partial update and returns the updated cohort
func (r *CohortRepository) Update(ctx context.Context, id string, update models.CohortUpdate) (*models.Cohort, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Update("cohorts").
		SetMap(cohortSetMap(update)).
		Where(squirrel.Expr("id = ?", uid)).
		Suffix("RETURNING " + joinColumns(cohortColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update cohort query: %w", err)
	}

	c, err := scanCohort(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrCohortNotFound
		case dberrors.IsDuplicateConstraintError(err, cohortSlugConstraint):
			return nil, apperrors.ErrCohortAlreadyExists
		}
		logger.Error().Err(err).Str("cohortID", id).Msg("Error executing update cohort query")
		return nil, fmt.Errorf("error updating cohort: %w", err)
	}
	return c, nil
}

// Delete removes a cohort; students.cohort_id is nulled by the foreign key
func (r *CohortRepository) Delete(ctx context.Context, id string) error {
	uid, err := parseUUID(id)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Delete("cohorts").Where(squirrel.Expr("id = ?", uid)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete cohort query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCohortNotFound
	}
	return nil
}

// Count returns the number of cohorts
func (r *CohortRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb, "cohorts")
}
