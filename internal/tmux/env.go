package tmux

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(string) (string, bool)

// NestedProbe returns a check reporting whether tmm runs inside a tmux client.
func NestedProbe(lookup LookupFunc) func() bool {
	return func() bool {
		v, ok := lookup("TMUX")
		return ok && strings.TrimSpace(v) != ""
	}
}

// ResolveSocketPath picks the server socket: the flag value, then the socket
// named by TMUX, then the per-user default under TMUX_TMPDIR.
func ResolveSocketPath(flagValue string, lookup LookupFunc) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tmuxEnv, ok := lookup("TMUX"); ok && tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir, _ := lookup("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
