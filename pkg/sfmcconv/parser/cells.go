package parser

import (
	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/pkg/sfmcconv/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet as a table. The first row holding any non-empty
// cell is the header; every later non-empty row becomes a record keyed by
// header name. Cells under an empty or repeated header are dropped.
func ReadTable(f *excelize.File, sheetName string) (*models.SheetTable, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	table := &models.SheetTable{Name: sheetName}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return table, nil
	}
	table.HeaderRow = headerIdx + 1
	table.Header = rows[headerIdx]

	columns := columnIndex(table.Header)

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cellMap := make(map[string]string, len(columns))
		hasData := false

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			name, ok := columns[colIdx]
			if !ok {
				continue
			}
			hasData = true
			cellMap[name] = cellValue
		}

		if hasData {
			table.Records = append(table.Records, models.Record{
				R: rowIdx + 1, // 1-based row index
				C: cellMap,
			})
		}
	}

	return table, nil
}

// columnIndex maps column position to header name, keeping the first
// occurrence of a repeated name.
func columnIndex(header []string) map[int]string {
	seen := make(map[string]bool, len(header))
	idx := make(map[int]string, len(header))
	for i, h := range header {
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		idx[i] = h
	}
	return idx
}
