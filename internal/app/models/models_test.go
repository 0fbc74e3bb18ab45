package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCohortRefMarshal(t *testing.T) {
	s := Student{ID: "s1", Cohort: NewCohortRef("c1")}
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"cohort":"c1"`) {
		t.Errorf("expected bare cohort id, got %s", raw)
	}

	s.Cohort.Cohort = &Cohort{ID: "c1", Slug: "ft-wd"}
	raw, err = json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"cohort":{"_id":"c1","cohortSlug":"ft-wd"`) {
		t.Errorf("expected expanded cohort, got %s", raw)
	}

	s.Cohort = nil
	raw, _ = json.Marshal(s)
	if !strings.Contains(string(raw), `"cohort":null`) {
		t.Errorf("expected null cohort, got %s", raw)
	}
}

func TestCohortRefUnmarshal(t *testing.T) {
	var s Student
	if err := json.Unmarshal([]byte(`{"cohort":"c1"}`), &s); err != nil {
		t.Fatalf("unmarshal id: %v", err)
	}
	if s.CohortID() != "c1" || s.Cohort.Cohort != nil {
		t.Errorf("unexpected ref %+v", s.Cohort)
	}

	s = Student{}
	if err := json.Unmarshal([]byte(`{"cohort":{"_id":"c2","cohortName":"Two"}}`), &s); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}
	if s.CohortID() != "c2" || s.Cohort.Cohort == nil || s.Cohort.Cohort.Name != "Two" {
		t.Errorf("unexpected ref %+v", s.Cohort)
	}

	s = Student{}
	if err := json.Unmarshal([]byte(`{"cohort":42}`), &s); err == nil {
		t.Error("expected error for numeric cohort")
	}
}

func TestUniqueLanguages(t *testing.T) {
	got := UniqueLanguages([]Language{LanguageSpanish, LanguageEnglish, LanguageSpanish})
	if len(got) != 2 || got[0] != LanguageSpanish || got[1] != LanguageEnglish {
		t.Errorf("UniqueLanguages = %v", got)
	}
	if UniqueLanguages(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestEnumValidity(t *testing.T) {
	if !ProgramUXUI.IsValid() || Program("Cooking").IsValid() {
		t.Error("Program.IsValid mismatch")
	}
	if !CampusRemote.IsValid() || Campus("Tokyo").IsValid() {
		t.Error("Campus.IsValid mismatch")
	}
	if !FormatPartTime.IsValid() || Format("Weekend").IsValid() {
		t.Error("Format.IsValid mismatch")
	}
	if !LanguageDutch.IsValid() || Language("Klingon").IsValid() {
		t.Error("Language.IsValid mismatch")
	}
}

func TestCohortUpdateApply(t *testing.T) {
	c := Cohort{Name: "old", TotalHours: 360}
	name := "new"
	hours := 0
	u := CohortUpdate{Name: &name, TotalHours: &hours}
	if u.IsEmpty() {
		t.Fatal("update should not be empty")
	}
	u.Apply(&c)
	if c.Name != "new" || c.TotalHours != 0 {
		t.Errorf("Apply result %+v", c)
	}
	if !(CohortUpdate{}).IsEmpty() {
		t.Error("zero update should be empty")
	}
}

func TestStudentUpdateClearCohort(t *testing.T) {
	s := Student{Cohort: NewCohortRef("c1")}
	other := "c2"
	StudentUpdate{CohortID: &other}.Apply(&s)
	if s.CohortID() != "c2" {
		t.Errorf("cohort = %q", s.CohortID())
	}
	StudentUpdate{ClearCohort: true, CohortID: &other}.Apply(&s)
	if s.Cohort != nil {
		t.Errorf("expected cleared cohort, got %+v", s.Cohort)
	}
}
