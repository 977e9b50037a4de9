package parser

import (
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
)

// Replacement sheet columns.
const (
	ColumnOld = "old"
	ColumnNew = "new"
)

// ReplacementMap builds the old→new map of the named sheet in row order.
// A workbook without that sheet yields an empty map and no error; the caller
// decides whether an empty map is acceptable. Rows with an empty "old" cell
// are skipped.
func (w *Workbook) ReplacementMap(sheetName string) (*models.ReplacementMap, error) {
	m := models.NewReplacementMap()

	if !w.HasSheet(sheetName) {
		w.log.Warn("sheet for country not found", "sheet", sheetName)
		return m, nil
	}

	t, err := w.Table(sheetName)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(t, ColumnOld, ColumnNew); err != nil {
		return nil, err
	}

	for _, rec := range t.Records {
		old := rec.Get(ColumnOld)
		if old == "" {
			continue
		}
		m.Set(old, rec.Get(ColumnNew))
	}
	return m, nil
}
