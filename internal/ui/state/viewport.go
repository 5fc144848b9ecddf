package state

// Viewport tracks which slice of a list is on screen.
type Viewport struct {
	Offset int
}

// Follow adjusts the offset so cursor stays visible when at most maxVisible
// rows of total fit on screen, and returns the visible [start, end) range.
func (v *Viewport) Follow(cursor, total, maxVisible int) (int, int) {
	if total == 0 {
		v.Offset = 0
		return 0, 0
	}
	cursor = min(max(cursor, 0), total-1)
	if maxVisible <= 0 || maxVisible >= total {
		v.Offset = 0
		return 0, total
	}
	maxOffset := total - maxVisible
	v.Offset = min(max(v.Offset, 0), maxOffset)
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = min(cursor-maxVisible+1, maxOffset)
	}
	return v.Offset, v.Offset + maxVisible
}

// Range returns the visible [start, end) range for the current offset
// without adjusting it.
func (v Viewport) Range(total, maxVisible int) (int, int) {
	if total == 0 {
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	start := min(max(v.Offset, 0), total-maxVisible)
	return start, start + maxVisible
}
