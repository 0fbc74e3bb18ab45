// Package memory implements the repositories with in-process maps.
// It backs the test suite and the "memory" database driver.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// Store holds every collection behind a single lock
type Store struct {
	mu       sync.RWMutex
	cohorts  map[string]models.Cohort
	students map[string]models.Student
	users    map[string]models.User
	// insertion order, so listings are stable
	cohortOrder  []string
	studentOrder []string
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		cohorts:  make(map[string]models.Cohort),
		students: make(map[string]models.Student),
		users:    make(map[string]models.User),
	}
}

// NewRepositories creates repositories sharing one empty Store
func NewRepositories() *repositories.Repositories {
	store := NewStore()
	return &repositories.Repositories{
		Cohorts:  &CohortRepository{store: store},
		Students: &StudentRepository{store: store},
		Users:    &UserRepository{store: store},
	}
}

func newID() string {
	return uuid.NewString()
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewInvalidIDError(id)
	}
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
