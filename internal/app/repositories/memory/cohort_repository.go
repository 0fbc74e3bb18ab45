package memory

import (
	"context"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// CohortRepository keeps cohorts in a Store
type CohortRepository struct {
	store *Store
}

// NewCohortRepository creates a CohortRepository over store
func NewCohortRepository(store *Store) *CohortRepository {
	return &CohortRepository{store: store}
}

func cloneCohort(c models.Cohort) *models.Cohort {
	if c.EndDate != nil {
		end := *c.EndDate
		c.EndDate = &end
	}
	return &c
}

// List returns every cohort in insertion order
func (r *CohortRepository) List(_ context.Context) ([]*models.Cohort, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Cohort, 0, len(r.store.cohortOrder))
	for _, id := range r.store.cohortOrder {
		out = append(out, cloneCohort(r.store.cohorts[id]))
	}
	return out, nil
}

// GetByID retrieves a cohort by id
func (r *CohortRepository) GetByID(_ context.Context, id string) (*models.Cohort, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.cohorts[id]
	if !ok {
		return nil, apperrors.ErrCohortNotFound
	}
	return cloneCohort(c), nil
}

// GetByIDs returns the cohorts found among ids
func (r *CohortRepository) GetByIDs(_ context.Context, ids []string) ([]*models.Cohort, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Cohort, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := r.store.cohorts[id]; ok {
			out = append(out, cloneCohort(c))
		}
	}
	return out, nil
}

func (r *CohortRepository) slugTaken(slug, exceptID string) bool {
	for id, c := range r.store.cohorts {
		if id != exceptID && c.Slug == slug {
			return true
		}
	}
	return false
}

// Create stores a cohort and sets its ID
func (r *CohortRepository) Create(_ context.Context, cohort *models.Cohort) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.slugTaken(cohort.Slug, "") {
		return apperrors.ErrCohortAlreadyExists
	}

	cohort.ID = newID()
	r.store.cohorts[cohort.ID] = *cloneCohort(*cohort)
	r.store.cohortOrder = append(r.store.cohortOrder, cohort.ID)
	return nil
}

// Update applies a partial update and returns the updated cohort
func (r *CohortRepository) Update(_ context.Context, id string, update models.CohortUpdate) (*models.Cohort, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.cohorts[id]
	if !ok {
		return nil, apperrors.ErrCohortNotFound
	}
	if update.Slug != nil && r.slugTaken(*update.Slug, id) {
		return nil, apperrors.ErrCohortAlreadyExists
	}

	update.Apply(&c)
	r.store.cohorts[id] = c
	return cloneCohort(c), nil
}

// Delete removes a cohort by id
func (r *CohortRepository) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cohorts[id]; !ok {
		return apperrors.ErrCohortNotFound
	}
	delete(r.store.cohorts, id)
	r.store.cohortOrder = removeID(r.store.cohortOrder, id)
	return nil
}

// Count returns the number of cohorts
func (r *CohortRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.cohorts)), nil
}
