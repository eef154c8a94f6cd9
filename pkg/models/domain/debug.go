package domain

// DebugInfo backs the optional debug view: the normalized column list, row
// counts, and the first rows of the current filtered view.
type DebugInfo struct {
	Columns          []string
	RowCount         int
	FilteredRowCount int
	Sample           []Record
}
