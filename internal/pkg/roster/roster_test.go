package roster

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/cohort-tools/api/internal/app/models"
)

func TestWriteThenRead(t *testing.T) {
	students := []*models.Student{
		{
			FirstName: "Christine", LastName: "Clayton", Email: "christine@example.com", Phone: "567-890-1234",
			Languages: []models.Language{models.LanguageEnglish, models.LanguageDutch},
			Program:   models.ProgramWebDev,
			Projects:  []string{"Pet Finder", "Quiz"},
		},
		{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com", Phone: "123"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, students); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Line != 2 || first.Student.Email != "christine@example.com" || first.Student.Program != models.ProgramWebDev {
		t.Errorf("first row = %+v", first)
	}
	if len(first.Student.Languages) != 2 || first.Student.Languages[1] != models.LanguageDutch {
		t.Errorf("languages = %v", first.Student.Languages)
	}
	if len(first.Student.Projects) != 2 || first.Student.Projects[0] != "Pet Finder" {
		t.Errorf("projects = %v", first.Student.Projects)
	}
	if rows[1].Student.FirstName != "Bob" || len(rows[1].Student.Projects) != 0 {
		t.Errorf("second row = %+v", rows[1])
	}
}

func TestReadMatchesHeadersByName(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Email", "phone", "LASTNAME", "firstName", "notes"}
	row := []interface{}{"ana@example.com", "555", "Lopez", "Ana", "ignored"}
	blank := []interface{}{"", "", "", "", ""}
	_ = f.SetSheetRow(sheet, "A1", &header)
	_ = f.SetSheetRow(sheet, "A2", &blank)
	_ = f.SetSheetRow(sheet, "A3", &row)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	rows, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	s := rows[0].Student
	if rows[0].Line != 3 || s.FirstName != "Ana" || s.LastName != "Lopez" || s.Email != "ana@example.com" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestReadRejectsMissingColumns(t *testing.T) {
	f := excelize.NewFile()
	header := []interface{}{"firstName", "lastName"}
	_ = f.SetSheetRow(f.GetSheetName(0), "A1", &header)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(&buf); !errors.Is(err, ErrMissingHeader) {
		t.Errorf("expected ErrMissingHeader, got %v", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}
