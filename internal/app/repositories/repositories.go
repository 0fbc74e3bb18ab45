package repositories

import (
	"context"

	"github.com/cohort-tools/api/internal/app/models"
)

// CohortRepository defines the storage operations for cohorts.
// Lookups of unknown ids return apperrors.ErrCohortNotFound; unparseable ids
// return an error wrapping apperrors.ErrInvalidID.
type CohortRepository interface {
	List(ctx context.Context) ([]*models.Cohort, error)
	GetByID(ctx context.Context, id string) (*models.Cohort, error)
	// GetByIDs returns the cohorts that exist among ids, in no particular order
	GetByIDs(ctx context.Context, ids []string) ([]*models.Cohort, error)
	Create(ctx context.Context, cohort *models.Cohort) error
	Update(ctx context.Context, id string, update models.CohortUpdate) (*models.Cohort, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// StudentRepository defines the storage operations for students
type StudentRepository interface {
	List(ctx context.Context) ([]*models.Student, error)
	ListByCohort(ctx context.Context, cohortID string) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id string) error
	// ClearCohort removes the cohort reference from every student of cohortID
	ClearCohort(ctx context.Context, cohortID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the storage operations for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Repositories holds all the repository instances of one backend
type Repositories struct {
	Cohorts  CohortRepository
	Students StudentRepository
	Users    UserRepository
}
