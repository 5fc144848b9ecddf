package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/atomicstack/tmm/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

var errUnusableSnapshot = errors.New("session query returned no usable lines")

type refreshTickMsg time.Time

func refreshCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m *Model) handleRefreshTickMsg(tea.Msg) tea.Cmd {
	if m.quitting || m.refresh <= 0 {
		return nil
	}
	m.reconcile()
	return refreshCmd(m.refresh)
}

// snapshot queries the store. A failed, empty or undecodable answer is
// reported as false and leaves the registry alone.
func (m *Model) snapshot() ([]session.Session, bool) {
	if m.store == nil {
		return nil, false
	}
	lines, err := m.store.List()
	if err != nil {
		events.Store.Error(err)
		return nil, false
	}
	sessions, ok := session.ParseLines(lines)
	if !ok {
		events.Store.Error(errUnusableSnapshot)
		return nil, false
	}
	return sessions, true
}

func (m *Model) reconcile() {
	sessions, ok := m.snapshot()
	if !ok {
		return
	}
	m.registry = session.Reconcile(m.registry, sessions)
	m.syncRows()
}

// reconcileDiscover reconciles after a create or rename and selects the
// single session that appeared since before was captured.
func (m *Model) reconcileDiscover(before session.NameSet, requested string) {
	sessions, ok := m.snapshot()
	if !ok {
		return
	}
	next, found := session.ReconcileDiscover(m.registry, before, sessions, requested)
	events.Session.Discovered(requested, found.Result.String(), found.Name, found.Candidates)
	m.registry = next
	m.syncRows()
}

func (m *Model) syncRows() {
	m.rows = session.Rows(m.registry.Sessions())
	if m.mode == ModeFiltering {
		m.recomputeMatches()
	}
	events.UI.Refresh(m.registry.Len(), m.registry.Selected())
}
