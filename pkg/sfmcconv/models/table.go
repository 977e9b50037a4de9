// Package models defines data structures shared by the conversion stages.
package models

// Record represents a single non-empty data row of a sheet.
type Record struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// C maps header name to the cell text found under it.
	C map[string]string `json:"c"`
}

// Get returns the cell text under column, or "" when the row has no value there.
func (r Record) Get(column string) string {
	return r.C[column]
}

// SheetTable represents a sheet read as one header row followed by data rows.
type SheetTable struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// HeaderRow is the 1-based index of the header row (0 for an empty sheet).
	HeaderRow int `json:"header_row"`
	// Header lists the header cells in column order.
	Header []string `json:"header"`
	// Records contains the data rows below the header in document order.
	Records []Record `json:"records,omitempty"`
}

// HasColumn reports whether the header contains name verbatim.
func (t *SheetTable) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}
