package tmux

import (
	"bytes"
	"os/exec"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// sessionFormat reproduces the default list-sessions line without the
// attached marker. session_attached counts control-mode clients, so the
// marker is added from the client list instead.
const (
	sessionFormat  = "#{session_name}: #{session_windows} windows (created #{t:session_created})"
	clientFormat   = "#{client_control_mode} #{client_session}"
	attachedMarker = " (attached)"
)

type sessionHandle interface {
	Rename(string) error
	Kill() error
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	runExecCommand = func(name string, args ...string) commander {
		return &realCommander{cmd: exec.Command(name, args...)}
	}

	newSessionHandle = func(s *gotmux.Session) sessionHandle {
		if s == nil {
			return nil
		}
		return &realSessionHandle{session: s}
	}
)

type tmuxClient interface {
	ListSessionsFormat(format string) ([]string, error)
	ListClients() ([]*gotmux.Client, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	GetSessionByName(string) (*gotmux.Session, error)
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	DisplayMessage(target, format string) (string, error)
	Close() error
}

type commander interface {
	Output() ([]byte, error)
	Stderr() string
}

type realCommander struct {
	cmd    *exec.Cmd
	stderr bytes.Buffer
}

func (r *realCommander) Output() ([]byte, error) {
	r.cmd.Stderr = &r.stderr
	return r.cmd.Output()
}

func (r *realCommander) Stderr() string {
	return r.stderr.String()
}

type realSessionHandle struct {
	session *gotmux.Session
}

func (h *realSessionHandle) Rename(name string) error {
	return h.session.Rename(name)
}

func (h *realSessionHandle) Kill() error {
	return h.session.Kill()
}
