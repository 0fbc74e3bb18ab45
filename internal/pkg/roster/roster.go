// Package roster reads and writes student rosters as xlsx workbooks.
package roster

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cohort-tools/api/internal/app/models"
	"github.com/cohort-tools/api/internal/pkg/logger"
)

// SheetName is the sheet written by Write
const SheetName = "Students"

// ContentType is the MIME type of xlsx workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns is the header row, matched case-insensitively on import
var Columns = []string{
	"firstName", "lastName", "email", "phone", "linkedinUrl",
	"languages", "program", "background", "image", "projects",
}

var requiredColumns = []string{"firstName", "lastName", "email", "phone"}

// Errors returned by Read
var (
	ErrNoSheets      = errors.New("workbook does not contain any sheets")
	ErrMissingHeader = errors.New("roster header row is missing required columns")
)

// Row is one data row of an imported roster
type Row struct {
	// Line is the 1-based spreadsheet row number
	Line    int
	Student models.Student
}

// Read parses the first sheet of an xlsx workbook. The first row is a header;
// list cells (languages, projects) are comma separated.
func Read(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing excel file")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	index := headerIndex(rows[0])
	for _, col := range requiredColumns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, col)
		}
	}

	out := make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		cell := func(name string) string {
			j, ok := index[strings.ToLower(name)]
			if !ok || j >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[j])
		}

		languages := make([]models.Language, 0)
		for _, l := range splitList(cell("languages")) {
			languages = append(languages, models.Language(l))
		}

		out = append(out, Row{
			Line: i + 2,
			Student: models.Student{
				FirstName:   cell("firstName"),
				LastName:    cell("lastName"),
				Email:       cell("email"),
				Phone:       cell("phone"),
				LinkedinURL: cell("linkedinUrl"),
				Languages:   languages,
				Program:     models.Program(cell("program")),
				Background:  cell("background"),
				Image:       cell("image"),
				Projects:    splitList(cell("projects")),
			},
		})
	}
	return out, nil
}

// Write renders students as a single-sheet workbook with a header row
func Write(w io.Writer, students []*models.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, s := range students {
		languages := make([]string, 0, len(s.Languages))
		for _, l := range s.Languages {
			languages = append(languages, string(l))
		}
		row := []interface{}{
			s.FirstName, s.LastName, s.Email, s.Phone, s.LinkedinURL,
			strings.Join(languages, ", "), string(s.Program), s.Background, s.Image,
			strings.Join(s.Projects, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[key]; key != "" && !seen {
			index[key] = i
		}
	}
	return index
}

func splitList(cell string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(cell, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
