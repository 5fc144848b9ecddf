package session

import (
	"fmt"
	"strings"
)

// Store is the external source of truth for sessions. All calls are
// synchronous and may block for as long as the store takes to answer.
type Store interface {
	// List returns the raw "name: description" lines of every session.
	List() ([]string, error)
	Create(name string) error
	Rename(target, name string) error
	Kill(target string) error
}

// MutationError reports a failed create, rename or kill together with the
// diagnostic text the store produced.
type MutationError struct {
	Op         string
	Target     string
	Diagnostic string
	Err        error
}

func (e *MutationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Target != "" {
		fmt.Fprintf(&b, " %s", e.Target)
	}
	b.WriteString(" failed")
	if diag := strings.TrimSpace(e.Diagnostic); diag != "" {
		fmt.Fprintf(&b, ": %s", diag)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
