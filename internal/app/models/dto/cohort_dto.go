package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/cohort-tools/api/internal/app/models"
)

// CreateCohortRequest represents the body of POST /api/cohorts
type CreateCohortRequest struct {
	Slug           string         `json:"cohortSlug" binding:"required" example:"ft-wd-paris-2024-06"`
	Name           string         `json:"cohortName" binding:"required" example:"FT WD PARIS 2024 06"`
	Program        models.Program `json:"program" binding:"omitempty,enum" example:"Web Dev"`
	Format         models.Format  `json:"format" binding:"omitempty,enum" example:"Full Time"`
	Campus         models.Campus  `json:"campus" binding:"omitempty,enum" example:"Paris"`
	StartDate      *time.Time     `json:"startDate" example:"2024-06-20T00:00:00Z"`
	EndDate        *time.Time     `json:"endDate" example:"2024-10-01T00:00:00Z"`
	InProgress     bool           `json:"inProgress" example:"false"`
	ProgramManager string         `json:"programManager" binding:"required" example:"Mat"`
	LeadTeacher    string         `json:"leadTeacher" binding:"required" example:"Josh"`
	TotalHours     *int           `json:"totalHours" binding:"omitempty,min=0" example:"360"`
}

// ToModel builds a cohort from the request, applying defaults
func (r CreateCohortRequest) ToModel(now time.Time) models.Cohort {
	c := models.Cohort{
		Slug:           r.Slug,
		Name:           r.Name,
		Program:        r.Program,
		Format:         r.Format,
		Campus:         r.Campus,
		StartDate:      now.UTC(),
		EndDate:        r.EndDate,
		InProgress:     r.InProgress,
		ProgramManager: r.ProgramManager,
		LeadTeacher:    r.LeadTeacher,
		TotalHours:     models.DefaultTotalHours,
	}
	if r.StartDate != nil {
		c.StartDate = *r.StartDate
	}
	if r.TotalHours != nil {
		c.TotalHours = *r.TotalHours
	}
	return c
}

// OptionalTime distinguishes an absent JSON value from an explicit null
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

// UpdateCohortRequest represents the body of PUT /api/cohorts/:id. Omitted fields
// are left unchanged; `"endDate": null` and an empty program, format or campus clear them.
type UpdateCohortRequest struct {
	Slug           *string         `json:"cohortSlug" binding:"omitempty,min=1" example:"ft-wd-paris-2024-06"`
	Name           *string         `json:"cohortName" binding:"omitempty,min=1" example:"FT WD PARIS 2024 06"`
	Program        *models.Program `json:"program" binding:"omitempty,enum|eq=" example:"UX/UI"`
	Format         *models.Format  `json:"format" binding:"omitempty,enum|eq=" example:"Part Time"`
	Campus         *models.Campus  `json:"campus" binding:"omitempty,enum|eq=" example:"Lisbon"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        OptionalTime    `json:"endDate" swaggertype:"string" format:"date-time"`
	InProgress     *bool           `json:"inProgress" example:"true"`
	ProgramManager *string         `json:"programManager" binding:"omitempty,min=1"`
	LeadTeacher    *string         `json:"leadTeacher" binding:"omitempty,min=1"`
	TotalHours     *int            `json:"totalHours" binding:"omitempty,min=0" example:"400"`
}

// ToModel converts the request into a cohort patch
func (r UpdateCohortRequest) ToModel() models.CohortUpdate {
	u := models.CohortUpdate{
		Slug:           r.Slug,
		Name:           r.Name,
		Program:        r.Program,
		Format:         r.Format,
		Campus:         r.Campus,
		StartDate:      r.StartDate,
		InProgress:     r.InProgress,
		ProgramManager: r.ProgramManager,
		LeadTeacher:    r.LeadTeacher,
		TotalHours:     r.TotalHours,
	}
	if r.EndDate.Set {
		if r.EndDate.Value == nil {
			u.ClearEndDate = true
		} else {
			u.EndDate = r.EndDate.Value
		}
	}
	return u
}
