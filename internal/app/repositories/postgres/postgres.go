// Package postgres implements the repositories on PostgreSQL with pgx and squirrel.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// Unique constraints created by migrations/001_init.sql
const (
	cohortSlugConstraint   = "cohorts_cohort_slug_key"
	studentEmailConstraint = "students_email_key"
	userEmailConstraint    = "users_email_key"
)

// NewRepositories creates the Postgres-backed repositories
func NewRepositories(db *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		Cohorts:  NewCohortRepository(db),
		Students: NewStudentRepository(db),
		Users:    NewUserRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func parseUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.NewInvalidIDError(id)
	}
	return u, nil
}

func languagesToStrings(langs []models.Language) []string {
	out := make([]string, 0, len(langs))
	for _, l := range models.UniqueLanguages(langs) {
		out = append(out, string(l))
	}
	return out
}

func stringsToLanguages(values []string) []models.Language {
	out := make([]models.Language, 0, len(values))
	for _, v := range values {
		out = append(out, models.Language(v))
	}
	return out
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

func count(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}
