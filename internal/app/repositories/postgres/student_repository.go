package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
	"github.com/cohort-tools/api/internal/pkg/dberrors"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

var studentColumns = []string{
	"id::text", "first_name", "last_name", "email", "phone", "linkedin_url", "languages",
	"program", "background", "image", "cohort_id::text", "projects",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		s         models.Student
		languages []string
		program   string
		cohortID  *string
	)
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.LinkedinURL, &languages,
		&program, &s.Background, &s.Image, &cohortID, &s.Projects,
	)
	if err != nil {
		return nil, err
	}
	s.Languages = stringsToLanguages(languages)
	s.Program = models.Program(program)
	if cohortID != nil {
		s.Cohort = models.NewCohortRef(*cohortID)
	}
	if s.Projects == nil {
		s.Projects = []string{}
	}
	return &s, nil
}

func (r *StudentRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// List returns every student
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return r.query(ctx, r.sb.Select(studentColumns...).From("students").OrderBy("created_at"))
}

// ListByCohort returns the students referencing cohortID
func (r *StudentRepository) ListByCohort(ctx context.Context, cohortID string) ([]*models.Student, error) {
	uid, err := parseUUID(cohortID)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Expr("cohort_id = ?", uid)).OrderBy("created_at"))
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(squirrel.Expr("id = ?", uid)).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

func nullableCohortID(id string) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	return &uid, nil
}

// Create inserts a student with a freshly generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	cohortID, err := nullableCohortID(student.CohortID())
	if err != nil {
		return err
	}
	projects := student.Projects
	if projects == nil {
		projects = []string{}
	}

	id := uuid.New()
	sql, args, err := r.sb.Insert("students").
		Columns("id", "first_name", "last_name", "email", "phone", "linkedin_url", "languages",
			"program", "background", "image", "cohort_id", "projects").
		Values(id, student.FirstName, student.LastName, student.Email, student.Phone, student.LinkedinURL,
			languagesToStrings(student.Languages), string(student.Program), student.Background, student.Image,
			cohortID, projects).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentEmailConstraint) {
			logger.Warn().Str("email", student.Email).Msg("Attempted to create duplicate student")
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id.String()
	return nil
}

func studentSetMap(u models.StudentUpdate) (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if u.FirstName != nil {
		set["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		set["last_name"] = *u.LastName
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.LinkedinURL != nil {
		set["linkedin_url"] = *u.LinkedinURL
	}
	if u.Languages != nil {
		set["languages"] = languagesToStrings(*u.Languages)
	}
	if u.Program != nil {
		set["program"] = string(*u.Program)
	}
	if u.Background != nil {
		set["background"] = *u.Background
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Projects != nil {
		set["projects"] = *u.Projects
	}
	switch {
	case u.ClearCohort:
		set["cohort_id"] = nil
	case u.CohortID != nil:
		uid, err := parseUUID(*u.CohortID)
		if err != nil {
			return nil, err
		}
		set["cohort_id"] = uid
	}
	return set, nil
}

// Update applies a partial update and returns the updated student
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	set, err := studentSetMap(update)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Update("students").
		SetMap(set).
		Where(squirrel.Expr("id = ?", uid)).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.ErrStudentNotFound
		case dberrors.IsDuplicateConstraintError(err, studentEmailConstraint):
			return nil, apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return s, nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	uid, err := parseUUID(id)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Delete("students").Where(squirrel.Expr("id = ?", uid)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ClearCohort sets cohort_id to NULL for every student of cohortID
func (r *StudentRepository) ClearCohort(ctx context.Context, cohortID string) (int64, error) {
	uid, err := parseUUID(cohortID)
	if err != nil {
		return 0, err
	}

	sql, args, err := r.sb.Update("students").
		Set("cohort_id", nil).
		Where(squirrel.Expr("cohort_id = ?", uid)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build clear cohort query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error clearing cohort references: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb, "students")
}
