package state

import "strings"

// Span is a half-open byte range [Start, End) of one filter occurrence
// within a rendered row.
type Span struct {
	Start int
	End   int
}

// Occurrences returns every non-overlapping occurrence of filter in row,
// left to right. Matching is literal and case-sensitive. An empty filter has
// no occurrences.
func Occurrences(row, filter string) []Span {
	if filter == "" {
		return nil
	}
	var spans []Span
	offset := 0
	for {
		idx := strings.Index(row[offset:], filter)
		if idx < 0 {
			return spans
		}
		start := offset + idx
		end := start + len(filter)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
}

// Matches is the match set of the active filter: the ordered row indices that
// contain the filter text plus a pointer to the row the user is looking at.
// The pointer is -1 when absent and otherwise always one of the rows.
type Matches struct {
	filter  string
	rows    []int
	spans   map[int][]Span
	pointer int
}

// NewMatches returns an empty match set with no pointer.
func NewMatches() *Matches {
	return &Matches{pointer: -1}
}

// Recompute rebuilds the set from scratch for the given rows and filter and
// restores pointer continuity: a pointer still in the set is kept, otherwise
// it moves to the first match, or to none when nothing matches.
func (m *Matches) Recompute(rows []string, filter string) {
	m.filter = filter
	m.rows = m.rows[:0]
	m.spans = make(map[int][]Span)
	for i, row := range rows {
		spans := Occurrences(row, filter)
		if len(spans) == 0 {
			continue
		}
		m.rows = append(m.rows, i)
		m.spans[i] = spans
	}
	switch {
	case m.Contains(m.pointer):
	case len(m.rows) == 0:
		m.pointer = -1
	default:
		m.pointer = m.rows[0]
	}
}

// Clear empties the set and drops the pointer.
func (m *Matches) Clear() {
	m.filter = ""
	m.rows = nil
	m.spans = nil
	m.pointer = -1
}

// Filter returns the filter text the set was last computed for.
func (m *Matches) Filter() string {
	return m.filter
}

// Rows returns a copy of the matching row indices in row order.
func (m *Matches) Rows() []int {
	if len(m.rows) == 0 {
		return nil
	}
	dup := make([]int, len(m.rows))
	copy(dup, m.rows)
	return dup
}

// Len returns the number of matching rows.
func (m *Matches) Len() int {
	return len(m.rows)
}

// Spans returns the occurrences recorded for row i.
func (m *Matches) Spans(i int) []Span {
	return m.spans[i]
}

// Contains reports whether row i is in the set.
func (m *Matches) Contains(i int) bool {
	_, ok := m.spans[i]
	return ok
}

// Pointer returns the pointed-at row, or false when there is none.
func (m *Matches) Pointer() (int, bool) {
	if m.pointer < 0 {
		return -1, false
	}
	return m.pointer, true
}

// Step moves the pointer delta positions through the set, clamped at both
// ends.
func (m *Matches) Step(delta int) bool {
	if len(m.rows) == 0 {
		return false
	}
	pos := m.position()
	if pos < 0 {
		pos = 0
	} else {
		pos += delta
	}
	pos = min(max(pos, 0), len(m.rows)-1)
	old := m.pointer
	m.pointer = m.rows[pos]
	return old != m.pointer
}

// First points at the first match.
func (m *Matches) First() bool {
	if len(m.rows) == 0 {
		return false
	}
	old := m.pointer
	m.pointer = m.rows[0]
	return old != m.pointer
}

// Last points at the last match.
func (m *Matches) Last() bool {
	if len(m.rows) == 0 {
		return false
	}
	old := m.pointer
	m.pointer = m.rows[len(m.rows)-1]
	return old != m.pointer
}

func (m *Matches) position() int {
	for i, row := range m.rows {
		if row == m.pointer {
			return i
		}
	}
	return -1
}
