package mongodb

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/apperrors"
)

func TestParseObjectID(t *testing.T) {
	if _, err := parseObjectID(primitive.NewObjectID().Hex()); err != nil {
		t.Errorf("valid object id rejected: %v", err)
	}
	if _, err := parseObjectID("not-an-id"); !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestCohortUpdateDocument(t *testing.T) {
	name := "FT WD"
	hours := 400
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	program := models.ProgramUXUI
	empty := models.Campus("")

	tests := []struct {
		name      string
		update    models.CohortUpdate
		wantSet   bson.M
		wantUnset bson.M
	}{
		{
			name:    "only supplied fields",
			update:  models.CohortUpdate{Name: &name, TotalHours: &hours},
			wantSet: bson.M{"cohortName": name, "totalHours": hours},
		},
		{
			name:    "end date set",
			update:  models.CohortUpdate{EndDate: &end, Program: &program},
			wantSet: bson.M{"endDate": end, "program": string(program)},
		},
		{
			name:      "end date cleared",
			update:    models.CohortUpdate{EndDate: &end, ClearEndDate: true},
			wantUnset: bson.M{"endDate": ""},
		},
		{
			name:      "empty enum unset",
			update:    models.CohortUpdate{Campus: &empty, Name: &name},
			wantSet:   bson.M{"cohortName": name},
			wantUnset: bson.M{"campus": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cohortUpdateDocument(tt.update)
			assertOperator(t, doc, "$set", tt.wantSet)
			assertOperator(t, doc, "$unset", tt.wantUnset)
		})
	}
}

func TestStudentUpdateDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	hex := oid.Hex()
	bad := "nope"
	first := "Ada"
	langs := []models.Language{models.LanguageFrench, models.LanguageFrench}

	tests := []struct {
		name      string
		update    models.StudentUpdate
		wantSet   bson.M
		wantUnset bson.M
		wantErr   error
	}{
		{
			name:    "cohort set as object id",
			update:  models.StudentUpdate{CohortID: &hex, FirstName: &first},
			wantSet: bson.M{"cohort": oid, "firstName": first},
		},
		{
			name:      "clear cohort wins over cohort id",
			update:    models.StudentUpdate{CohortID: &hex, ClearCohort: true},
			wantUnset: bson.M{"cohort": ""},
		},
		{
			name:    "malformed cohort id",
			update:  models.StudentUpdate{CohortID: &bad},
			wantErr: apperrors.ErrInvalidID,
		},
		{
			name:    "languages deduplicated",
			update:  models.StudentUpdate{Languages: &langs},
			wantSet: bson.M{"languages": []models.Language{models.LanguageFrench}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := studentUpdateDocument(tt.update)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			assertOperator(t, doc, "$set", tt.wantSet)
			assertOperator(t, doc, "$unset", tt.wantUnset)
		})
	}
}

func TestNewStudentDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	doc, err := newStudentDocument(&models.Student{Email: "a@example.com", Cohort: models.NewCohortRef(oid.Hex())})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Cohort == nil || *doc.Cohort != oid {
		t.Errorf("cohort = %v, want %v", doc.Cohort, oid)
	}
	if doc.Languages == nil || doc.Projects == nil {
		t.Errorf("nil slices stored: %+v", doc)
	}

	_, err = newStudentDocument(&models.Student{Email: "b@example.com", Cohort: models.NewCohortRef("665f")})
	if !errors.Is(err, apperrors.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestStudentDocumentToModel(t *testing.T) {
	s := studentDocument{ID: primitive.NewObjectID(), Email: "a@example.com"}.toModel()
	if s.Languages == nil || s.Projects == nil {
		t.Errorf("nil slices returned: %+v", s)
	}
	if s.Cohort != nil {
		t.Errorf("cohort = %+v, want nil", s.Cohort)
	}

	oid := primitive.NewObjectID()
	s = studentDocument{ID: primitive.NewObjectID(), Cohort: &oid}.toModel()
	if s.CohortID() != oid.Hex() {
		t.Errorf("cohort id = %q, want %q", s.CohortID(), oid.Hex())
	}
}

func TestCohortDocumentRoundTrip(t *testing.T) {
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &models.Cohort{Slug: "ft-wd-1", Name: "FT WD 1", Campus: models.CampusRemote, EndDate: &end, TotalHours: 360}

	doc := newCohortDocument(c)
	doc.ID = primitive.NewObjectID()
	got := doc.toModel()
	if got.ID != doc.ID.Hex() || got.Slug != c.Slug || got.Campus != c.Campus || got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Errorf("toModel = %+v", got)
	}
}

func assertOperator(t *testing.T, doc bson.M, op string, want bson.M) {
	t.Helper()
	got, ok := doc[op].(bson.M)
	if len(want) == 0 {
		if ok {
			t.Errorf("%s = %v, want none", op, got)
		}
		return
	}
	if !ok {
		t.Fatalf("%s missing from %v", op, doc)
	}
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", op, got, want)
	}
	for k, v := range want {
		if !bsonEqual(got[k], v) {
			t.Errorf("%s[%s] = %v, want %v", op, k, got[k], v)
		}
	}
}

func bsonEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case []models.Language:
		bv, ok := b.([]models.Language)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
