package ui

import (
	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, keys.First):
		m.registry.JumpFirst()
		events.UI.Cursor(m.registry.Selected())
	case key.Matches(msg, keys.Last):
		m.registry.JumpLast()
		events.UI.Cursor(m.registry.Selected())
	case key.Matches(msg, keys.Attach):
		return m.attachSelected(m.detachOthers)
	case key.Matches(msg, keys.AttachKeep):
		return m.attachSelected(false)
	case key.Matches(msg, keys.Delete):
		if cur, ok := m.registry.Current(); ok {
			events.Session.KillPrompt(cur.Name)
			m.setMode(ModeConfirmingDelete)
		}
	case key.Matches(msg, keys.Rename):
		if cur, ok := m.registry.Current(); ok {
			events.Session.RenamePrompt(cur.Name)
			m.setMode(ModeEnteringRename)
		}
	case key.Matches(msg, keys.Create):
		if m.isNested() {
			events.Session.NestedWarning()
			m.setMode(ModeNestedWarning)
			return nil
		}
		events.Session.NewPrompt(m.registry.Len())
		m.setMode(ModeEnteringCreate)
	case key.Matches(msg, keys.Filter):
		events.Filter.Start()
		m.setMode(ModeFiltering)
	case key.Matches(msg, keys.Refresh):
		m.reconcile()
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	if m.registry.MoveSelection(delta) {
		events.UI.Cursor(m.registry.Selected())
	}
}

// attachSelected exits with an attach outcome, or a switch when nested.
func (m *Model) attachSelected(detachOthers bool) tea.Cmd {
	cur, ok := m.registry.Current()
	if !ok {
		return nil
	}
	if m.isNested() {
		events.Session.Switch(cur.Name)
		return m.quit(Outcome{Kind: OutcomeSwitch, Target: cur.Name})
	}
	events.Session.Attach(cur.Name, detachOthers)
	return m.quit(Outcome{Kind: OutcomeAttach, Target: cur.Name, DetachOthers: detachOthers})
}
