package tmux

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/tmm/internal/logging/events"
	"github.com/atomicstack/tmm/internal/session"
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var errNonUTF8 = errors.New("list-sessions output is not valid UTF-8")

// listSessionsExec runs list-sessions directly. It is used when the
// control-mode query fails or returns nothing.
func listSessionsExec(socketPath string) ([]string, error) {
	args := append(baseArgs(socketPath), "list-sessions", "-F", sessionFormat)
	cmd := runExecCommand("tmux", args...)
	output, err := cmd.Output()
	if err != nil {
		if diag := strings.TrimSpace(cmd.Stderr()); diag != "" {
			return nil, fmt.Errorf("list-sessions: %s: %w", diag, err)
		}
		return nil, fmt.Errorf("list-sessions: %w", err)
	}
	if !utf8.Valid(output) {
		return nil, errNonUTF8
	}
	text := strings.TrimRight(string(output), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// attachedSessionsExec lists the sessions a non-control client is on. Any
// failure yields no markers.
func attachedSessionsExec(socketPath string) map[string]bool {
	args := append(baseArgs(socketPath), "list-clients", "-F", clientFormat)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return nil
	}
	attached := make(map[string]bool)
	for _, line := range strings.Split(string(output), "\n") {
		mode, name, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || mode == "1" || name == "" {
			continue
		}
		attached[name] = true
	}
	return attached
}

// markAttached appends the attached marker to the lines of attached sessions.
func markAttached(lines []string, attached map[string]bool) []string {
	if len(attached) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		name, _, _ := strings.Cut(line, ":")
		if attached[strings.TrimSpace(name)] {
			out[i] += attachedMarker
		}
	}
	return out
}

func findSession(client tmuxClient, target string) (sessionHandle, error) {
	s, err := client.GetSessionByName(target)
	if err != nil {
		return nil, err
	}
	return newSessionHandle(s), nil
}

func createSession(client tmuxClient, name string) error {
	if _, err := client.NewSession(&gotmux.SessionOptions{Name: name}); err != nil {
		return mutationError("new-session", name, err)
	}
	return nil
}

func renameSession(client tmuxClient, target, name string) error {
	handle, err := findSession(client, target)
	if err != nil {
		return mutationError("rename-session", target, err)
	}
	if handle == nil {
		return missingSession("rename-session", target)
	}
	if err := handle.Rename(name); err != nil {
		return mutationError("rename-session", target, err)
	}
	return nil
}

func killSession(client tmuxClient, target string) error {
	handle, err := findSession(client, target)
	if err != nil {
		return mutationError("kill-session", target, err)
	}
	if handle == nil {
		return missingSession("kill-session", target)
	}
	if err := handle.Kill(); err != nil {
		return mutationError("kill-session", target, err)
	}
	return nil
}

func mutationError(op, target string, err error) error {
	return &session.MutationError{
		Op:         op,
		Target:     target,
		Diagnostic: strings.TrimSpace(err.Error()),
		Err:        err,
	}
}

// asMutationError wraps err unless it already carries the failed operation.
func asMutationError(op, target string, err error) error {
	if err == nil {
		return nil
	}
	var mutErr *session.MutationError
	if errors.As(err, &mutErr) {
		return err
	}
	return mutationError(op, target, err)
}

func missingSession(op, target string) error {
	err := fmt.Errorf("can't find session: %s", target)
	events.Store.Error(err)
	return mutationError(op, target, err)
}
