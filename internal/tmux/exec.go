package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/atomicstack/tmm/internal/logging/events"
)

var errNoTmux = errors.New("tmux binary not found")

var (
	lookPath = exec.LookPath
	execFn   = syscall.Exec
)

// Exec replaces the running process with tmux invoked with args.
func Exec(args []string) error {
	path, err := lookPath("tmux")
	if err != nil {
		return fmt.Errorf("%w: %v", errNoTmux, err)
	}
	argv := append([]string{"tmux"}, args...)
	events.App.Handoff(argv)
	if err := execFn(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec tmux: %w", err)
	}
	return nil
}
