// Package parser reads the replacement and fragment workbooks.
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/logger"
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

// ErrMissingColumn indicates a sheet lacks a column the lookup needs.
var ErrMissingColumn = errors.New("missing column")

// ErrMissingSheet indicates the workbook has no sheet with the requested name.
var ErrMissingSheet = errors.New("missing sheet")

// Workbook is a read-only view of an xlsx file. Sheets are read at most once.
type Workbook struct {
	f      *excelize.File
	tables map[string]*models.SheetTable
	log    *slog.Logger
}

// OpenWorkbook opens the workbook at path.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{
		f:      f,
		tables: make(map[string]*models.SheetTable),
		log:    logger.WithComponent("parser").With("workbook", path),
	}, nil
}

// ListSheets opens the workbook at path and returns its sheet names in workbook order.
func ListSheets(path string) ([]string, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.SheetNames(), nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet named name exists. The match is exact.
func (w *Workbook) HasSheet(name string) bool {
	for _, s := range w.f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// Table returns the sheet named name read as a header row plus records.
func (w *Workbook) Table(name string) (*models.SheetTable, error) {
	if t, ok := w.tables[name]; ok {
		return t, nil
	}
	if !w.HasSheet(name) {
		return nil, fmt.Errorf("%w: %q", ErrMissingSheet, name)
	}

	t, err := ReadTable(w.f, name)
	if err != nil {
		return nil, err
	}
	w.tables[name] = t
	w.log.Debug("sheet loaded", "sheet", name, "header", t.Header, "records", len(t.Records))
	return t, nil
}

func requireColumns(t *models.SheetTable, columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w: sheet %q has no %q column", ErrMissingColumn, t.Name, c)
		}
	}
	return nil
}
