package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/tmm/internal/logging"
	"github.com/atomicstack/tmm/internal/session"
	"github.com/atomicstack/tmm/internal/tmux"
	"github.com/atomicstack/tmm/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	ShowLegend   bool
	DetachOthers bool
	Refresh      time.Duration
}

// sessionClient is the part of the tmux store the exit handoff needs.
type sessionClient interface {
	Switch(target string) error
	Close() error
}

type sessionStore interface {
	session.Store
	sessionClient
}

var (
	execTmux = tmux.Exec
	lookup   = tmux.LookupFunc(os.LookupEnv)
	newStore = func(socketPath string, lookup tmux.LookupFunc) sessionStore {
		return tmux.NewStore(socketPath, lookup)
	}

	runProgram = func(model *ui.Model) error {
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}
)

// Run bootstraps the session list, runs it until the user picks an exit, and
// then hands the terminal over to tmux when the exit calls for it.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath, lookup)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	store := newStore(socketPath, lookup)
	model := ui.NewModel(ui.Options{
		Store:        store,
		Nested:       tmux.NestedProbe(lookup),
		DetachOthers: cfg.DetachOthers,
		ShowLegend:   cfg.ShowLegend,
		Refresh:      cfg.Refresh,
		Width:        cfg.Width,
		Height:       cfg.Height,
	})
	err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err == nil {
		err = model.Err()
	}
	if err != nil {
		closeStore(store)
		return err
	}
	return handoff(store, socketPath, model.Outcome())
}

// handoff performs the exit action. Attaching replaces the process, so the
// control connection is released first.
func handoff(client sessionClient, socketPath string, outcome ui.Outcome) error {
	switch outcome.Kind {
	case ui.OutcomeSwitch:
		err := client.Switch(outcome.Target)
		closeStore(client)
		return err
	case ui.OutcomeAttach:
		closeStore(client)
		return execTmux(tmux.AttachArgs(socketPath, outcome.Target, outcome.DetachOthers))
	case ui.OutcomeCreateAndEnter:
		closeStore(client)
		return execTmux(tmux.NewSessionArgs(socketPath))
	default:
		closeStore(client)
		return nil
	}
}

func closeStore(client sessionClient) {
	if err := client.Close(); err != nil {
		logging.Error(fmt.Errorf("close tmux connection: %w", err))
	}
}
