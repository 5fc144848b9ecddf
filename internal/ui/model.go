package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/atomicstack/tmm/internal/session"
	"github.com/atomicstack/tmm/internal/theme"
	uistate "github.com/atomicstack/tmm/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Store session.Store
	// Nested reports whether tmm runs inside a tmux client. Nil means never.
	Nested       func() bool
	DetachOthers bool
	ShowLegend   bool
	// Refresh re-queries the store at this interval. Zero disables it.
	Refresh time.Duration
	Width   int
	Height  int
}

// Model implements the Bubble Tea model for the session list.
type Model struct {
	store        session.Store
	nested       func() bool
	registry     *session.Registry
	rows         []string
	mode         Mode
	input        *textinput.Model
	matches      *uistate.Matches
	viewport     uistate.Viewport
	help         help.Model
	detachOthers bool
	showLegend   bool
	refresh      time.Duration
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool

	outcome  Outcome
	err      error
	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and performs the initial reconciliation.
func NewModel(opts Options) *Model {
	m := &Model{
		store:        opts.Store,
		nested:       opts.Nested,
		registry:     session.NewRegistry(),
		mode:         ModeBrowsing,
		matches:      uistate.NewMatches(),
		help:         help.New(),
		detachOthers: opts.DetachOthers,
		showLegend:   opts.ShowLegend,
		refresh:      opts.Refresh,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.reconcile()
	m.syncViewport()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.refresh > 0 {
		return refreshCmd(m.refresh)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(refreshTickMsg{}):    m.handleRefreshTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncViewport()
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	if !m.mode.hasBuffer() && key.Matches(keyMsg, keys.Quit) {
		return m.quit(Outcome{})
	}
	switch m.mode {
	case ModeBrowsing:
		return m.handleBrowsingKey(keyMsg)
	case ModeFiltering:
		return m.handleFilteringKey(keyMsg)
	case ModeConfirmingDelete:
		return m.handleConfirmKey(keyMsg)
	case ModeEnteringRename, ModeEnteringCreate:
		return m.handleEntryKey(keyMsg)
	case ModeNestedWarning:
		m.setMode(ModeBrowsing)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
		m.help.Width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// setMode is the only place entry buffers are allocated or released.
func (m *Model) setMode(next Mode) {
	prev := m.mode
	if prev == next {
		return
	}
	m.mode = next
	if next.hasBuffer() {
		m.input = newEntryInput(next, m.placeholderFor(next))
	} else {
		m.input = nil
	}
	if prev == ModeFiltering || next == ModeFiltering {
		m.matches.Clear()
	}
	events.UI.Mode(prev.String(), next.String())
}

func (m *Model) placeholderFor(mode Mode) string {
	switch mode {
	case ModeEnteringRename:
		if cur, ok := m.registry.Current(); ok {
			return cur.Name
		}
	case ModeEnteringCreate:
		return "leave empty for an unnamed session"
	}
	return ""
}

func (m *Model) quit(outcome Outcome) tea.Cmd {
	m.outcome = outcome
	m.quitting = true
	events.App.Exit(outcome.Kind.String(), outcome.Target)
	return tea.Quit
}

// fail records a store mutation failure and ends the program.
func (m *Model) fail(err error) tea.Cmd {
	events.Store.Error(err)
	m.err = err
	m.quitting = true
	return tea.Quit
}

func (m *Model) isNested() bool {
	return m.nested != nil && m.nested()
}

// Mode returns the active interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Registry returns the current session registry.
func (m *Model) Registry() *session.Registry {
	return m.registry
}

// Matches returns the current filter match set.
func (m *Model) Matches() *uistate.Matches {
	return m.matches
}

// Outcome returns the exit action chosen before the program quit.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Err returns the mutation failure that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// InputValue returns the contents of the active entry buffer.
func (m *Model) InputValue() (string, bool) {
	if m.input == nil {
		return "", false
	}
	return m.input.Value(), true
}
