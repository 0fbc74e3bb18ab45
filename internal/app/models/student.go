package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultStudentImage is used when a student is created without an image
const DefaultStudentImage = "https://i.imgur.com/r8bo8u7.png"

// Student defines the student document
type Student struct {
	ID          string     `json:"_id" db:"id" example:"665f1c2e8b3f4a2d9c0e1a22"`                   // Unique identifier
	FirstName   string     `json:"firstName" db:"first_name" example:"Christine"`                     // Student's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Clayton"`                         // Student's last name
	Email       string     `json:"email" db:"email" example:"christine.clayton@example.com"`          // Unique email address
	Phone       string     `json:"phone" db:"phone" example:"567-890-1234"`                           // Contact phone
	LinkedinURL string     `json:"linkedinUrl" db:"linkedin_url" example:"https://linkedin.com/in/c"` // LinkedIn profile URL
	Languages   []Language `json:"languages" db:"languages"`                                          // Spoken languages, no repeats
	Program     Program    `json:"program,omitempty" db:"program" example:"Web Dev"`                  // Followed program
	Background  string     `json:"background" db:"background" example:"Computer Engineering"`        // Free-text background
	Image       string     `json:"image" db:"image" example:"https://i.imgur.com/r8bo8u7.png"`        // Avatar URL
	Cohort      *CohortRef `json:"cohort" db:"cohort_id" swaggertype:"string"`                        // Cohort id, or the cohort itself when populated
	Projects    []string   `json:"projects" db:"projects"`                                            // Ordered project list
}

// CohortRef references a cohort by id and optionally holds the expanded document.
// It marshals as the bare id unless Cohort is set.
type CohortRef struct {
	ID     string
	Cohort *Cohort
}

// NewCohortRef returns a reference to id, or nil when id is empty
func NewCohortRef(id string) *CohortRef {
	if id == "" {
		return nil
	}
	return &CohortRef{ID: id}
}

// CohortID returns the referenced cohort id or "" when the student has no cohort
func (s *Student) CohortID() string {
	if s.Cohort == nil {
		return ""
	}
	return s.Cohort.ID
}

// MarshalJSON implements json.Marshaler
func (r CohortRef) MarshalJSON() ([]byte, error) {
	if r.Cohort != nil {
		return json.Marshal(r.Cohort)
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either an id string or a cohort object
func (r *CohortRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = CohortRef{}
		return nil
	}

	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = CohortRef{ID: id}
	case '{':
		var c Cohort
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		*r = CohortRef{ID: c.ID, Cohort: &c}
	default:
		return fmt.Errorf("cohort reference must be a string or an object, got %s", data)
	}
	return nil
}

// StudentUpdate carries the fields of a partial student update; nil means unchanged.
// ClearCohort removes the cohort reference and takes precedence over CohortID.
type StudentUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	LinkedinURL *string
	Languages   *[]Language
	Program     *Program
	Background  *string
	Image       *string
	CohortID    *string
	ClearCohort bool
	Projects    *[]string
}

// IsEmpty reports whether the update changes nothing
func (u StudentUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Phone == nil &&
		u.LinkedinURL == nil && u.Languages == nil && u.Program == nil && u.Background == nil &&
		u.Image == nil && u.CohortID == nil && !u.ClearCohort && u.Projects == nil
}

// Apply copies the set fields of u onto s
func (u StudentUpdate) Apply(s *Student) {
	if u.FirstName != nil {
		s.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		s.LastName = *u.LastName
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.LinkedinURL != nil {
		s.LinkedinURL = *u.LinkedinURL
	}
	if u.Languages != nil {
		s.Languages = UniqueLanguages(*u.Languages)
	}
	if u.Program != nil {
		s.Program = *u.Program
	}
	if u.Background != nil {
		s.Background = *u.Background
	}
	if u.Image != nil {
		s.Image = *u.Image
	}
	switch {
	case u.ClearCohort:
		s.Cohort = nil
	case u.CohortID != nil:
		s.Cohort = NewCohortRef(*u.CohortID)
	}
	if u.Projects != nil {
		s.Projects = append([]string(nil), (*u.Projects)...)
	}
}
