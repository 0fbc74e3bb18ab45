package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDuplicateKeyError(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "cohorts_cohort_slug_key"}
	mongoDup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"postgres unique violation", fmt.Errorf("insert: %w", pgDup), true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"mongo duplicate", mongoDup, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateKeyError(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKeyError() = %v, want %v", got, tt.want)
			}
		})
	}

	if !IsDuplicateConstraintError(pgDup, "cohorts_cohort_slug_key") {
		t.Error("expected constraint match")
	}
	if IsDuplicateConstraintError(pgDup, "students_email_key") {
		t.Error("unexpected constraint match")
	}
}
