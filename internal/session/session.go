// Package session holds the canonical in-memory view of tmux sessions: the
// ordered registry, the reconciliation rules that re-derive it from a fresh
// store snapshot, and the set-difference heuristics used to find sessions the
// store created or renamed on our behalf.
package session

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/tmm/internal/format/table"
)

// Session is a single entry reported by the store. Two sessions are the same
// session iff their names are equal.
type Session struct {
	Name        string
	Description string
}

// ParseLines converts raw store output lines of the form "name: description"
// into sessions. Only the first colon separates the name; the remainder,
// including any further colons, is the description. The second return value
// is false when the output carries no usable snapshot (empty or invalid
// UTF-8), in which case callers must keep their previous state.
func ParseLines(lines []string) ([]Session, bool) {
	out := make([]Session, 0, len(lines))
	for _, line := range lines {
		if !utf8.ValidString(line) {
			return nil, false
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, desc, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, Session{Name: name, Description: strings.TrimSpace(desc)})
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Rows renders the textual form of each session: the name right-aligned to
// the widest name, followed by ": " and the description. The search engine
// matches against exactly these strings.
func Rows(sessions []Session) []string {
	if len(sessions) == 0 {
		return nil
	}
	cells := make([][]string, len(sessions))
	for i, s := range sessions {
		cells[i] = []string{s.Name, s.Description}
	}
	return table.Format(cells, []table.Alignment{table.AlignRight, table.AlignLeft}, ": ")
}

// NameSet is an unordered set of session names.
type NameSet map[string]struct{}

// NamesOf collects the names of the given sessions.
func NamesOf(sessions []Session) NameSet {
	set := make(NameSet, len(sessions))
	for _, s := range sessions {
		set[s.Name] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}
