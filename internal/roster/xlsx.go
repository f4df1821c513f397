package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/rollbook/internal/state"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by Export and read first by Import.
const SheetName = "Sheet1"

var exportHeader = []interface{}{"ID", "Name", "Roll No", "Course"}

// Export writes every student to w as an xlsx workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	students, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", slog.Any("error", err))
		}
	}()

	if err := f.SetSheetRow(SheetName, "A1", &exportHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for i, st := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		row := []interface{}{st.ID, st.Name, st.RollNo, st.Course}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "B", "D", 24); err != nil {
		return 0, fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("exported students", slog.Int("count", len(students)))
	return len(students), nil
}

// SkippedRow is a spreadsheet row Import did not add.
type SkippedRow struct {
	Row    int // 1-based, as shown in spreadsheet software
	Reason string
}

// ImportResult summarises an Import.
type ImportResult struct {
	Added   int
	Skipped []SkippedRow
}

// Import adds a student for every data row of the first worksheet in r.
// Rows that fail validation or reuse a roll number are skipped and reported;
// any other storage error aborts the import.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", slog.Any("error", err))
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}

	cols, start := columnLayout(rows)
	result := &ImportResult{}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		form := Form{
			Name:   cellAt(row, cols.name),
			RollNo: cellAt(row, cols.rollNo),
			Course: cellAt(row, cols.course),
		}

		if _, err := s.Add(ctx, form); err != nil {
			if !isRecoverable(err) {
				return result, fmt.Errorf("row %d: %w", i+1, err)
			}
			result.Skipped = append(result.Skipped, SkippedRow{Row: i + 1, Reason: Describe(ActionAdd, err).Text})
			continue
		}
		result.Added++
	}

	s.logger.Info("imported students",
		slog.Int("added", result.Added),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

type layout struct {
	name, rollNo, course int
}

// columnLayout locates the columns by header text. Without a recognisable
// header the first three columns are Name, Roll No and Course.
func columnLayout(rows [][]string) (layout, int) {
	def := layout{name: 0, rollNo: 1, course: 2}
	if len(rows) == 0 {
		return def, 0
	}

	found := layout{name: -1, rollNo: -1, course: -1}
	for i, cell := range rows[0] {
		switch normalizeHeader(cell) {
		case "name":
			found.name = i
		case "rollno", "roll", "rollnumber":
			found.rollNo = i
		case "course":
			found.course = i
		}
	}
	if found.name < 0 || found.rollNo < 0 || found.course < 0 {
		return def, 0
	}
	return found, 1
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", ".", "").Replace(s)
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isRecoverable(err error) bool {
	return errors.Is(err, ErrRequiredField) || errors.Is(err, state.ErrDuplicateRollNo)
}
