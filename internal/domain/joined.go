package domain

// JoinedRow is one base order after the left joins. Cells of right tables
// without a matching row are empty until null-filling.
type JoinedRow struct {
	Cells     []string
	Unmatched []string
}

// Joined is the output of the left-join step, before nulls are filled.
type Joined struct {
	Columns []string
	Rows    []JoinedRow
}
