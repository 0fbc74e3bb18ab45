package models

import "time"

// DefaultTotalHours is applied when a cohort is created without totalHours
const DefaultTotalHours = 360

// Cohort is a named training group with program, campus, schedule and staffing metadata
type Cohort struct {
	ID             string     `json:"_id" db:"id" example:"665f1c2e8b3f4a2d9c0e1a11"`
	Slug           string     `json:"cohortSlug" db:"cohort_slug" example:"ft-wd-paris-2024-06"`
	Name           string     `json:"cohortName" db:"cohort_name" example:"FT WD PARIS 2024 06"`
	Program        Program    `json:"program,omitempty" db:"program" example:"Web Dev"`
	Format         Format     `json:"format,omitempty" db:"format" example:"Full Time"`
	Campus         Campus     `json:"campus,omitempty" db:"campus" example:"Paris"`
	StartDate      time.Time  `json:"startDate" db:"start_date" example:"2024-06-20T00:00:00Z"`
	EndDate        *time.Time `json:"endDate,omitempty" db:"end_date" example:"2024-10-01T00:00:00Z"`
	InProgress     bool       `json:"inProgress" db:"in_progress" example:"false"`
	ProgramManager string     `json:"programManager" db:"program_manager" example:"Mat"`
	LeadTeacher    string     `json:"leadTeacher" db:"lead_teacher" example:"Josh"`
	TotalHours     int        `json:"totalHours" db:"total_hours" example:"360"`
}

// CohortUpdate carries the fields of a partial cohort update; nil means unchanged.
// An empty Program, Format or Campus clears that field.
type CohortUpdate struct {
	Slug           *string
	Name           *string
	Program        *Program
	Format         *Format
	Campus         *Campus
	StartDate      *time.Time
	EndDate        *time.Time
	ClearEndDate   bool
	InProgress     *bool
	ProgramManager *string
	LeadTeacher    *string
	TotalHours     *int
}

// IsEmpty reports whether the update changes nothing
func (u CohortUpdate) IsEmpty() bool {
	return u.Slug == nil && u.Name == nil && u.Program == nil && u.Format == nil &&
		u.Campus == nil && u.StartDate == nil && u.EndDate == nil && !u.ClearEndDate && u.InProgress == nil &&
		u.ProgramManager == nil && u.LeadTeacher == nil && u.TotalHours == nil
}

// Apply copies the set fields of u onto c
func (u CohortUpdate) Apply(c *Cohort) {
	if u.Slug != nil {
		c.Slug = *u.Slug
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Program != nil {
		c.Program = *u.Program
	}
	if u.Format != nil {
		c.Format = *u.Format
	}
	if u.Campus != nil {
		c.Campus = *u.Campus
	}
	if u.StartDate != nil {
		c.StartDate = *u.StartDate
	}
	switch {
	case u.ClearEndDate:
		c.EndDate = nil
	case u.EndDate != nil:
		end := *u.EndDate
		c.EndDate = &end
	}
	if u.InProgress != nil {
		c.InProgress = *u.InProgress
	}
	if u.ProgramManager != nil {
		c.ProgramManager = *u.ProgramManager
	}
	if u.LeadTeacher != nil {
		c.LeadTeacher = *u.LeadTeacher
	}
	if u.TotalHours != nil {
		c.TotalHours = *u.TotalHours
	}
}
