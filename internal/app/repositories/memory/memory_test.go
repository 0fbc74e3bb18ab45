package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

func TestCohortRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	c := &models.Cohort{Slug: "ft-wd-1", Name: "FT WD 1", TotalHours: 360}
	if err := repos.Cohorts.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}

	dup := &models.Cohort{Slug: "ft-wd-1", Name: "dup"}
	if err := repos.Cohorts.Create(ctx, dup); !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Errorf("duplicate slug: got %v", err)
	}
	if n, _ := repos.Cohorts.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	name := "renamed"
	updated, err := repos.Cohorts.Update(ctx, c.ID, models.CohortUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "renamed" || updated.Slug != "ft-wd-1" {
		t.Errorf("Update result %+v", updated)
	}

	if err := repos.Cohorts.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repos.Cohorts.GetByID(ctx, c.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("GetByID after delete: got %v", err)
	}
	if err := repos.Cohorts.Delete(ctx, c.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("second Delete: got %v", err)
	}
	if _, err := repos.Cohorts.GetByID(ctx, "not-an-id"); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("malformed id: got %v", err)
	}
}

func TestStudentRepositoryCohortLinks(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	c := &models.Cohort{Slug: "pt-ux", Name: "PT UX"}
	if err := repos.Cohorts.Create(ctx, c); err != nil {
		t.Fatalf("Create cohort: %v", err)
	}

	a := &models.Student{FirstName: "A", Email: "a@example.com", Cohort: models.NewCohortRef(c.ID)}
	b := &models.Student{FirstName: "B", Email: "b@example.com"}
	for _, s := range []*models.Student{a, b} {
		if err := repos.Students.Create(ctx, s); err != nil {
			t.Fatalf("Create student: %v", err)
		}
	}

	dup := &models.Student{Email: "a@example.com"}
	if err := repos.Students.Create(ctx, dup); !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Errorf("duplicate email: got %v", err)
	}

	inCohort, err := repos.Students.ListByCohort(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListByCohort: %v", err)
	}
	if len(inCohort) != 1 || inCohort[0].ID != a.ID {
		t.Errorf("ListByCohort = %+v", inCohort)
	}

	n, err := repos.Students.ClearCohort(ctx, c.ID)
	if err != nil || n != 1 {
		t.Fatalf("ClearCohort = %d, %v", n, err)
	}
	got, _ := repos.Students.GetByID(ctx, a.ID)
	if got.Cohort != nil {
		t.Errorf("expected cleared cohort, got %+v", got.Cohort)
	}

	all, _ := repos.Students.List(ctx)
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != b.ID {
		t.Errorf("List order = %+v", all)
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	u := &models.User{Email: "ada@example.com", Name: "Ada", PasswordHash: "x"}
	if err := repos.Users.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if err := repos.Users.Create(ctx, &models.User{Email: "ada@example.com"}); !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Errorf("duplicate email: got %v", err)
	}

	byEmail, err := repos.Users.GetByEmail(ctx, "ada@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Errorf("GetByEmail = %+v, %v", byEmail, err)
	}
	if _, err := repos.Users.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("unknown email: got %v", err)
	}
}
