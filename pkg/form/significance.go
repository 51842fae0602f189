package form

// IsSignificant reports whether row carries user input. A row counts as
// entered when any cell is non-blank, except that a count cell holding the
// seeded default of 1 is ignored. Validation and payload construction both
// filter rows through this function.
func IsSignificant(row Row) bool {
	for _, cell := range row.Cells() {
		if cell.Value.Blank() {
			continue
		}
		if cell.Key == CountKey {
			if n, ok := cell.Value.Float(); ok && n == 1 {
				continue
			}
		}
		return true
	}
	return false
}

// SignificantRows returns the indexes of significant rows, preserving order.
func SignificantRows[R Row](rows []R) []int {
	out := make([]int, 0, len(rows))
	for i, row := range rows {
		if IsSignificant(row) {
			out = append(out, i)
		}
	}
	return out
}
