package ui

import (
	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	cur, ok := m.registry.Current()
	switch {
	case key.Matches(msg, keys.Confirm):
		m.setMode(ModeBrowsing)
		if !ok {
			return nil
		}
		events.Session.Kill(cur.Name)
		if err := m.store.Kill(cur.Name); err != nil {
			return m.fail(err)
		}
		m.reconcile()
	case key.Matches(msg, keys.Deny):
		events.Session.CancelKill(cur.Name, events.SessionReasonDenied)
		m.setMode(ModeBrowsing)
	}
	return nil
}
