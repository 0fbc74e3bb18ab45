package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

// StudentService defines the student use cases. When populate is true the
// cohort reference of each returned student is expanded into the cohort document.
type StudentService interface {
	ListStudents(ctx context.Context, populate bool) ([]*models.Student, error)
	ListStudentsByCohort(ctx context.Context, cohortID string, populate bool) ([]*models.Student, error)
	GetStudent(ctx context.Context, id string, populate bool) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type studentService struct {
	studentRepo repositories.StudentRepository
	cohortRepo  repositories.CohortRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, cohortRepo repositories.CohortRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		cohortRepo:  cohortRepo,
		logger:      logger,
	}
}

func applyStudentDefaults(s *models.Student) {
	if s.Image == "" {
		s.Image = models.DefaultStudentImage
	}
	s.Languages = models.UniqueLanguages(s.Languages)
	if s.Languages == nil {
		s.Languages = []models.Language{}
	}
	if s.Projects == nil {
		s.Projects = []string{}
	}
}

func validateStudent(s *models.Student) error {
	for _, f := range []struct{ name, value string }{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"phone", s.Phone},
	} {
		if err := requireText(f.name, f.value); err != nil {
			return err
		}
	}
	if err := validateEnum("program", s.Program, string(s.Program)); err != nil {
		return err
	}
	for _, l := range s.Languages {
		if !l.IsValid() {
			return apperrors.NewValidationError("languages", fmt.Sprintf("%q is not a valid language", string(l)))
		}
	}
	return nil
}

// ensureCohortExists turns a dangling or malformed cohort reference into a validation error
func (s *studentService) ensureCohortExists(ctx context.Context, cohortID string) error {
	if cohortID == "" {
		return nil
	}
	_, err := s.cohortRepo.GetByID(ctx, cohortID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrResourceNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
		return apperrors.NewValidationError("cohort", "Referenced cohort does not exist")
	}
	return err
}

// populate expands cohort references in place. References to missing cohorts render as null.
func (s *studentService) populate(ctx context.Context, students []*models.Student) error {
	ids := make([]string, 0, len(students))
	for _, st := range students {
		if id := st.CohortID(); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cohorts, err := s.cohortRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error populating cohorts: %w", err)
	}
	byID := make(map[string]*models.Cohort, len(cohorts))
	for _, c := range cohorts {
		byID[c.ID] = c
	}

	for _, st := range students {
		if st.Cohort == nil {
			continue
		}
		if c, ok := byID[st.Cohort.ID]; ok {
			st.Cohort.Cohort = c
		} else {
			st.Cohort = nil
		}
	}
	return nil
}

// ListStudents returns every student
func (s *studentService) ListStudents(ctx context.Context, populate bool) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if populate {
		if err := s.populate(ctx, students); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// ListStudentsByCohort returns the students of one cohort
func (s *studentService) ListStudentsByCohort(ctx context.Context, cohortID string, populate bool) ([]*models.Student, error) {
	students, err := s.studentRepo.ListByCohort(ctx, cohortID)
	if err != nil {
		return nil, err
	}
	if populate {
		if err := s.populate(ctx, students); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// GetStudent returns one student
func (s *studentService) GetStudent(ctx context.Context, id string, populate bool) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if populate {
		if err := s.populate(ctx, []*models.Student{student}); err != nil {
			return nil, err
		}
	}
	return student, nil
}

// CreateStudent validates and stores a new student
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) error {
	applyStudentDefaults(student)
	if err := validateStudent(student); err != nil {
		return err
	}
	if err := s.ensureCohortExists(ctx, student.CohortID()); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}
	s.logger.Info().Str("studentID", student.ID).Str("cohortID", student.CohortID()).Msg("Student created")
	return nil
}

// UpdateStudent applies a partial update, validating the merged result
func (s *studentService) UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	current, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	update.Apply(&merged)
	if err := validateStudent(&merged); err != nil {
		return nil, err
	}
	if update.CohortID != nil && !update.ClearCohort {
		if err := s.ensureCohortExists(ctx, *update.CohortID); err != nil {
			return nil, err
		}
	}

	return s.studentRepo.Update(ctx, id, update)
}

// DeleteStudent removes a student
func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("studentID", id).Msg("Student deleted")
	return nil
}
