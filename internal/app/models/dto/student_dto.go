package dto

import (
	"bytes"
	"encoding/json"

	"github.com/cohort-tools/api/internal/app/models"
)

// CreateStudentRequest represents the body of POST /api/students
type CreateStudentRequest struct {
	FirstName   string            `json:"firstName" binding:"required" example:"Christine"`
	LastName    string            `json:"lastName" binding:"required" example:"Clayton"`
	Email       string            `json:"email" binding:"required" example:"christine.clayton@example.com"`
	Phone       string            `json:"phone" binding:"required" example:"567-890-1234"`
	LinkedinURL string            `json:"linkedinUrl" example:"https://linkedin.com/in/christineclayton"`
	Languages   []models.Language `json:"languages" binding:"omitempty,dive,enum"`
	Program     models.Program    `json:"program" binding:"omitempty,enum" example:"Web Dev"`
	Background  string            `json:"background" example:"Computer Engineering"`
	Image       string            `json:"image" example:"https://i.imgur.com/r8bo8u7.png"`
	Cohort      string            `json:"cohort" example:"665f1c2e8b3f4a2d9c0e1a11"`
	Projects    []string          `json:"projects"`
}

// ToModel builds a student from the request, applying defaults
func (r CreateStudentRequest) ToModel() models.Student {
	s := models.Student{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		LinkedinURL: r.LinkedinURL,
		Languages:   models.UniqueLanguages(r.Languages),
		Program:     r.Program,
		Background:  r.Background,
		Image:       r.Image,
		Cohort:      models.NewCohortRef(r.Cohort),
		Projects:    r.Projects,
	}
	if s.Image == "" {
		s.Image = models.DefaultStudentImage
	}
	if s.Languages == nil {
		s.Languages = []models.Language{}
	}
	if s.Projects == nil {
		s.Projects = []string{}
	}
	return s
}

// OptionalID distinguishes an absent JSON value from an explicit null or empty string
type OptionalID struct {
	Set   bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// UpdateStudentRequest represents the body of PUT /api/students/:id.
// Omitted fields are left unchanged; `"cohort": null` removes the cohort reference.
type UpdateStudentRequest struct {
	FirstName   *string           `json:"firstName" binding:"omitempty,min=1"`
	LastName    *string           `json:"lastName" binding:"omitempty,min=1"`
	Email       *string           `json:"email" binding:"omitempty,min=1"`
	Phone       *string           `json:"phone" binding:"omitempty,min=1"`
	LinkedinURL *string           `json:"linkedinUrl"`
	Languages   []models.Language `json:"languages" binding:"omitempty,dive,enum"`
	Program     *models.Program   `json:"program" binding:"omitempty,enum"`
	Background  *string           `json:"background"`
	Image       *string           `json:"image"`
	Cohort      OptionalID        `json:"cohort" swaggertype:"string"`
	Projects    []string          `json:"projects"`
}

// ToModel converts the request into a student patch
func (r UpdateStudentRequest) ToModel() models.StudentUpdate {
	u := models.StudentUpdate{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		LinkedinURL: r.LinkedinURL,
		Program:     r.Program,
		Background:  r.Background,
		Image:       r.Image,
	}
	if r.Languages != nil {
		langs := models.UniqueLanguages(r.Languages)
		u.Languages = &langs
	}
	if r.Projects != nil {
		projects := r.Projects
		u.Projects = &projects
	}
	if r.Cohort.Set {
		if r.Cohort.Value == "" {
			u.ClearCohort = true
		} else {
			id := r.Cohort.Value
			u.CohortID = &id
		}
	}
	return u
}

// ImportStudentsResponse summarizes a roster import
type ImportStudentsResponse struct {
	Message       string `json:"message" example:"Students imported"`
	ImportedCount int    `json:"importedCount" example:"12"`
	Skipped       int    `json:"skipped" example:"1"`
	CohortID      string `json:"cohortId,omitempty" example:"665f1c2e8b3f4a2d9c0e1a11"`
}
