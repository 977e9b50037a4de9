package parser

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]any
}

// writeWorkbook saves sheets, in order, to an xlsx file under t.TempDir().
func writeWorkbook(t *testing.T, sheets ...testSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("Failed to add sheet %q: %v", s.name, err)
		}
		for r, row := range s.rows {
			row := row
			if err := f.SetSheetRow(s.name, fmt.Sprintf("A%d", r+1), &row); err != nil {
				t.Fatalf("Failed to write row %d of %q: %v", r+1, s.name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func openTestWorkbook(t *testing.T, sheets ...testSheet) *Workbook {
	t.Helper()

	wb, err := OpenWorkbook(writeWorkbook(t, sheets...))
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}
