package tmux

import (
	"github.com/atomicstack/tmm/internal/logging/events"
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Store serves session queries and mutations for one tmux server. The
// control-mode connection is opened on first use and reused until tmux closes
// it, which happens when the session it sits on is killed.
type Store struct {
	socketPath string
	client     tmuxClient
	lookup     LookupFunc
}

// NewStore returns a store bound to socketPath. lookup supplies TMUX_PANE
// when a switch needs to name the visible client.
func NewStore(socketPath string, lookup LookupFunc) *Store {
	return &Store{socketPath: socketPath, lookup: lookup}
}

// SocketPath returns the socket the store talks to.
func (s *Store) SocketPath() string {
	return s.socketPath
}

func (s *Store) conn() (tmuxClient, error) {
	if s.client != nil {
		return s.client, nil
	}
	client, err := newTmux(s.socketPath)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// drop discards the cached connection so the next call dials again.
func (s *Store) drop(reason error) {
	if s.client == nil {
		return
	}
	events.Store.Reconnect(reason)
	_ = s.client.Close()
	s.client = nil
}

// withClient runs fn on the control-mode connection. A failure on a reused
// connection is retried once on a fresh one.
func (s *Store) withClient(fn func(tmuxClient) error) error {
	reused := s.client != nil
	client, err := s.conn()
	if err != nil {
		return err
	}
	err = fn(client)
	if err == nil || !reused {
		return err
	}
	s.drop(err)
	client, cerr := s.conn()
	if cerr != nil {
		return err
	}
	return fn(client)
}

// Close releases the control-mode connection.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

// List returns one line per session, name first and colon separated. A
// session is marked attached only when a client other than a control-mode
// connection (tmm's own included) is on it.
func (s *Store) List() ([]string, error) {
	var lines []string
	err := s.withClient(func(client tmuxClient) error {
		found, err := client.ListSessionsFormat(sessionFormat)
		if err != nil {
			return err
		}
		lines = markAttached(found, attachedSessions(client))
		return nil
	})
	if err == nil && len(lines) > 0 {
		events.Store.Query(len(lines), nil)
		return lines, nil
	}
	reason := "empty"
	if err != nil {
		reason = err.Error()
		s.drop(err)
	}
	events.Store.Fallback(reason)
	lines, err = listSessionsExec(s.socketPath)
	if err == nil {
		lines = markAttached(lines, attachedSessionsExec(s.socketPath))
	}
	events.Store.Query(len(lines), err)
	return lines, err
}

// Create starts a detached session called name.
func (s *Store) Create(name string) error {
	err := s.withClient(func(client tmuxClient) error {
		return createSession(client, name)
	})
	return asMutationError("new-session", name, err)
}

// Rename renames target to name.
func (s *Store) Rename(target, name string) error {
	err := s.withClient(func(client tmuxClient) error {
		return renameSession(client, target, name)
	})
	return asMutationError("rename-session", target, err)
}

// Kill destroys target.
func (s *Store) Kill(target string) error {
	err := s.withClient(func(client tmuxClient) error {
		return killSession(client, target)
	})
	return asMutationError("kill-session", target, err)
}

// Switch moves the client that launched tmm to target.
func (s *Store) Switch(target string) error {
	pane := ""
	if s.lookup != nil {
		pane, _ = s.lookup("TMUX_PANE")
	}
	err := s.withClient(func(client tmuxClient) error {
		opts := &gotmux.SwitchClientOptions{TargetSession: target}
		if name := currentClientName(client, pane); name != "" {
			opts.TargetClient = name
		}
		if err := client.SwitchClient(opts); err != nil {
			return mutationError("switch-client", target, err)
		}
		return nil
	})
	return asMutationError("switch-client", target, err)
}
