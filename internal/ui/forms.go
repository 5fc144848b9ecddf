package ui

import (
	"strings"

	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const entryCharLimit = 64

func newEntryInput(mode Mode, placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = entryCharLimit
	if mode == ModeFiltering {
		ti.Prompt = "/"
		ti.CharLimit = 0
	} else {
		ti.Prompt = "> "
	}
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &ti
}

func (m *Model) handleEntryKey(msg tea.KeyMsg) tea.Cmd {
	kind := m.mode.Entering()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.traceEntryCancel(kind)
		m.setMode(ModeBrowsing)
		return nil
	case key.Matches(msg, keys.Submit):
		value := strings.TrimSpace(m.input.Value())
		m.setMode(ModeBrowsing)
		if kind == EntryRename {
			return m.commitRename(value)
		}
		return m.commitCreate(value)
	}
	updated, cmd := m.input.Update(msg)
	m.input = &updated
	return cmd
}

func (m *Model) traceEntryCancel(kind EntryKind) {
	if kind == EntryRename {
		cur, _ := m.registry.Current()
		events.Session.CancelRename(cur.Name, events.SessionReasonEscape)
		return
	}
	events.Session.CancelNew(events.SessionReasonEscape)
}

func (m *Model) commitRename(name string) tea.Cmd {
	cur, ok := m.registry.Current()
	if !ok {
		return nil
	}
	if name == "" {
		events.Session.CancelRename(cur.Name, events.SessionReasonEmpty)
		return nil
	}
	before := m.registry.Names()
	events.Session.Rename(cur.Name, name)
	if err := m.store.Rename(cur.Name, name); err != nil {
		return m.fail(err)
	}
	m.reconcileDiscover(before, name)
	return nil
}

// commitCreate creates name in the background, or exits into a fresh
// unnamed session when name is empty.
func (m *Model) commitCreate(name string) tea.Cmd {
	events.Session.SubmitNew(name)
	if name == "" {
		return m.quit(Outcome{Kind: OutcomeCreateAndEnter})
	}
	before := m.registry.Names()
	events.Session.Create(name)
	if err := m.store.Create(name); err != nil {
		return m.fail(err)
	}
	m.reconcileDiscover(before, name)
	return nil
}
