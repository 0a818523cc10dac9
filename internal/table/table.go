// Package table implements the generic row ordering and filtering shared by
// the market, portfolio and order views.
package table

import "strings"

type ColumnKind string

const (
	// Text compares case-insensitively.
	Text ColumnKind = "text"
	// NumericPrice compares the parsed decimal value, not the formatted
	// display string.
	NumericPrice ColumnKind = "numericPrice"
	// SignedPercentage compares the magnitude negated for loss rows, so a
	// -3% row sorts below a +1% row.
	SignedPercentage ColumnKind = "signedPercentage"
)

// Cell is one displayable value. Number carries the parsed value for
// numeric kinds, Loss marks a percentage rendered with the danger
// indicator.
type Cell struct {
	Text   string
	Number float64
	Loss   bool
}

type Row struct {
	Cells  []Cell
	Status string
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sorter orders rows in place and owns the per-column direction state: a
// sort that finds the rows already fully ascending flips to descending, so
// repeated invocations on the same column toggle direction.
type Sorter struct {
	last map[int]Direction
}

func NewSorter() *Sorter {
	return &Sorter{last: make(map[int]Direction)}
}

// Sort orders rows by the given column and reports the direction applied.
// It runs stable adjacent-swap passes ascending first; when the ascending
// attempt needs zero swaps the rows were already in order and the sort
// re-runs descending.
func (s *Sorter) Sort(rows []Row, column int, kind ColumnKind) Direction {
	direction := Ascending
	if swaps := bubble(rows, column, kind, Ascending); swaps == 0 {
		direction = Descending
		bubble(rows, column, kind, Descending)
	}
	s.last[column] = direction
	return direction
}

// LastDirection reports the direction the previous Sort call on a column
// applied, for the caller's sort indicator.
func (s *Sorter) LastDirection(column int) (Direction, bool) {
	d, ok := s.last[column]
	return d, ok
}

func bubble(rows []Row, column int, kind ColumnKind, direction Direction) int {
	swaps := 0
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i < len(rows)-1; i++ {
			cmp := compare(rows[i].Cells[column], rows[i+1].Cells[column], kind)
			if (direction == Ascending && cmp > 0) || (direction == Descending && cmp < 0) {
				rows[i], rows[i+1] = rows[i+1], rows[i]
				swapped = true
				swaps++
			}
		}
	}
	return swaps
}

func compare(a, b Cell, kind ColumnKind) int {
	switch kind {
	case NumericPrice:
		return compareFloat(a.Number, b.Number)
	case SignedPercentage:
		return compareFloat(signed(a), signed(b))
	default:
		return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	}
}

func signed(c Cell) float64 {
	if c.Loss {
		return -c.Number
	}
	return c.Number
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Filter keeps rows whose designated column contains query,
// case-insensitively. An empty query keeps everything.
func Filter(rows []Row, query string, column int) []Row {
	if query == "" {
		return rows
	}

	query = strings.ToUpper(query)
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToUpper(row.Cells[column].Text), query) {
			kept = append(kept, row)
		}
	}
	return kept
}

// FilterAny keeps rows where any cell contains query, the behavior of the
// order history search box.
func FilterAny(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}

	query = strings.ToUpper(query)
	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row.Cells {
			if strings.Contains(strings.ToUpper(cell.Text), query) {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}

// AllStatuses is the sentinel that disables status filtering.
const AllStatuses = "all"

// FilterByStatus keeps rows with an exactly matching status.
func FilterByStatus(rows []Row, status string) []Row {
	if status == AllStatuses {
		return rows
	}

	kept := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Status == status {
			kept = append(kept, row)
		}
	}
	return kept
}
