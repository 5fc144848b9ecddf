package ui

import (
	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleFilteringKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Submit):
		row, ok := m.matches.Pointer()
		if ok {
			m.registry.Select(row)
		}
		events.Filter.Commit(m.matches.Filter(), row)
		m.setMode(ModeBrowsing)
	case key.Matches(msg, keys.Cancel):
		events.Filter.Cleared(m.matches.Filter())
		m.setMode(ModeBrowsing)
	case key.Matches(msg, keys.MatchPrev):
		m.matches.Step(-1)
	case key.Matches(msg, keys.MatchNext):
		m.matches.Step(1)
	case key.Matches(msg, keys.MatchFirst):
		m.matches.First()
	case key.Matches(msg, keys.MatchLast):
		m.matches.Last()
	default:
		updated, cmd := m.input.Update(msg)
		m.input = &updated
		m.recomputeMatches()
		return cmd
	}
	return nil
}

func (m *Model) recomputeMatches() {
	if m.input == nil {
		return
	}
	m.matches.Recompute(m.rows, m.input.Value())
	events.Filter.Update(m.matches.Filter(), m.matches.Len())
}
