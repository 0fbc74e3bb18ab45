package memory

import (
	"context"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// StudentRepository keeps students in a Store
type StudentRepository struct {
	store *Store
}

// NewStudentRepository creates a StudentRepository over store
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// cloneStudent copies s without any expanded cohort
func cloneStudent(s models.Student) *models.Student {
	s.Languages = append([]models.Language{}, s.Languages...)
	s.Projects = append([]string{}, s.Projects...)
	s.Cohort = models.NewCohortRef(s.CohortID())
	return &s
}

// List returns every student in insertion order
func (r *StudentRepository) List(_ context.Context) ([]*models.Student, error) {
	return r.filter(func(models.Student) bool { return true }), nil
}

// ListByCohort returns the students referencing cohortID
func (r *StudentRepository) ListByCohort(_ context.Context, cohortID string) ([]*models.Student, error) {
	if err := checkID(cohortID); err != nil {
		return nil, err
	}
	return r.filter(func(s models.Student) bool { return s.CohortID() == cohortID }), nil
}

func (r *StudentRepository) filter(keep func(models.Student) bool) []*models.Student {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*models.Student, 0)
	for _, id := range r.store.studentOrder {
		if s := r.store.students[id]; keep(s) {
			out = append(out, cloneStudent(s))
		}
	}
	return out
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

func (r *StudentRepository) emailTaken(email, exceptID string) bool {
	for id, s := range r.store.students {
		if id != exceptID && s.Email == email {
			return true
		}
	}
	return false
}

// Create stores a student and sets its ID
func (r *StudentRepository) Create(_ context.Context, student *models.Student) error {
	if id := student.CohortID(); id != "" {
		if err := checkID(id); err != nil {
			return err
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTaken(student.Email, "") {
		return apperrors.ErrStudentAlreadyExists
	}

	student.ID = newID()
	r.store.students[student.ID] = *cloneStudent(*student)
	r.store.studentOrder = append(r.store.studentOrder, student.ID)
	return nil
}

// Update applies a partial update and returns the updated student
func (r *StudentRepository) Update(_ context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if update.CohortID != nil && !update.ClearCohort {
		if err := checkID(*update.CohortID); err != nil {
			return nil, err
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if update.Email != nil && r.emailTaken(*update.Email, id) {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	update.Apply(&s)
	r.store.students[id] = s
	return cloneStudent(s), nil
}

// Delete removes a student by id
func (r *StudentRepository) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.store.students, id)
	r.store.studentOrder = removeID(r.store.studentOrder, id)
	return nil
}

// ClearCohort removes the cohort reference from every student of cohortID
func (r *StudentRepository) ClearCohort(_ context.Context, cohortID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for id, s := range r.store.students {
		if s.CohortID() == cohortID {
			s.Cohort = nil
			r.store.students[id] = s
			n++
		}
	}
	return n, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.students)), nil
}
