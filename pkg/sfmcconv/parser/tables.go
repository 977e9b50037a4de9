package parser

// findHeaderRow returns the index of the first row holding a non-empty cell, or -1.
func findHeaderRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				return rowIdx
			}
		}
	}
	return -1
}
