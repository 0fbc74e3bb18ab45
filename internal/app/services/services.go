// Package services holds the business rules between controllers and repositories.
//
// Services defined in this package:
//   - CohortService: cohort CRUD; deleting a cohort clears its students' reference
//   - StudentService: student CRUD, cohort population and reference checks
//   - AuthService: signup, login, token verification and revocation
//   - RosterService: xlsx roster import and export
package services

import (
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/repositories"
	"github.com/cohort-tools/api/internal/pkg/auth"
)

// Services bundles every service instance
type Services struct {
	Cohorts  CohortService
	Students StudentService
	Auth     AuthService
	Roster   RosterService
}

// Dependencies are the credential collaborators of AuthService
type Dependencies struct {
	Hasher     auth.PasswordHasher
	Tokens     auth.TokenIssuer
	Revocation auth.RevocationList
}

// NewServices wires all services over one repository set
func NewServices(repos *repositories.Repositories, deps Dependencies, logger zerolog.Logger) *Services {
	cohorts := NewCohortService(repos.Cohorts, repos.Students, logger.With().Str("service", "cohort").Logger())
	students := NewStudentService(repos.Students, repos.Cohorts, logger.With().Str("service", "student").Logger())
	return &Services{
		Cohorts:  cohorts,
		Students: students,
		Auth:     NewAuthService(repos.Users, deps.Hasher, deps.Tokens, deps.Revocation, logger.With().Str("service", "auth").Logger()),
		Roster:   NewRosterService(students, cohorts, logger.With().Str("service", "roster").Logger()),
	}
}
