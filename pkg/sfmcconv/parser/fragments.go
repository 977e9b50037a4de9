package parser

import (
	"fmt"
	"strings"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

// Fragment sheet columns.
const (
	ColumnModel   = "model"
	ColumnType    = "type"
	ColumnPurpose = "purpose"
	ColumnCode    = "code"
)

const (
	// PurposeListSheet is the sheet listing the selectable purposes.
	PurposeListSheet = "list"
	// PurposeListColumn is the column of PurposeListSheet holding them.
	PurposeListColumn = "Purpose"
)

// LookupFragment returns the code of the first row of q.Sheet whose model and
// type equal the query, and whose purpose equals q.Purpose when one is given.
// A missing sheet or an unmatched query is logged and reported through
// Fragment.Found; only a sheet lacking the needed columns is an error.
func (w *Workbook) LookupFragment(q models.FragmentQuery) (models.Fragment, error) {
	attrs := []any{"country", q.Sheet, "model", q.Model, "type", string(q.Type)}
	if q.Purpose != "" {
		attrs = append(attrs, "purpose", q.Purpose)
	}

	if !w.HasSheet(q.Sheet) {
		w.log.Warn("sheet for country not found", attrs...)
		return models.Fragment{}, nil
	}

	t, err := w.Table(q.Sheet)
	if err != nil {
		return models.Fragment{}, err
	}

	columns := []string{ColumnModel, ColumnType, ColumnCode}
	if q.Purpose != "" {
		columns = append(columns, ColumnPurpose)
	}
	if err := requireColumns(t, columns...); err != nil {
		return models.Fragment{}, err
	}

	for _, rec := range t.Records {
		if rec.Get(ColumnModel) != q.Model || rec.Get(ColumnType) != string(q.Type) {
			continue
		}
		if q.Purpose != "" && rec.Get(ColumnPurpose) != q.Purpose {
			continue
		}
		return models.Fragment{Code: rec.Get(ColumnCode), Found: true, Row: rec.R}, nil
	}

	w.log.Warn("no fragment found", attrs...)
	return models.Fragment{}, nil
}

// Purposes returns the distinct non-empty values of the Purpose column of the
// list sheet, in first-seen order. Header names are compared after trimming
// surrounding whitespace.
func (w *Workbook) Purposes() ([]string, error) {
	t, err := w.Table(PurposeListSheet)
	if err != nil {
		return nil, err
	}

	column := ""
	for _, h := range t.Header {
		if strings.TrimSpace(h) == PurposeListColumn {
			column = h
			break
		}
	}
	if column == "" {
		return nil, fmt.Errorf("%w: sheet %q has no %q column", ErrMissingColumn, t.Name, PurposeListColumn)
	}

	var purposes []string
	seen := make(map[string]bool)
	for _, rec := range t.Records {
		p := rec.Get(column)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		purposes = append(purposes, p)
	}
	return purposes, nil
}
