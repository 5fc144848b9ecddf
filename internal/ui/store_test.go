package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/tmm/internal/session"
)

// fakeStore behaves like a tmux server: it rewrites '.' and ':' in new
// names and keeps sessions in creation order.
type fakeStore struct {
	sessions []session.Session
	listErr  error
	raw      []string

	createErr error
	renameErr error
	killErr   error

	// alsoCreate is appended on the next Create to mimic a concurrent client.
	alsoCreate []string

	calls []string
}

func newFakeStore(names ...string) *fakeStore {
	f := &fakeStore{}
	for i, name := range names {
		f.sessions = append(f.sessions, session.Session{Name: name, Description: fmt.Sprintf("%d windows", i+1)})
	}
	return f
}

var tmuxNameReplacer = strings.NewReplacer(".", "_", ":", "_")

func (f *fakeStore) List() ([]string, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.raw != nil {
		return f.raw, nil
	}
	lines := make([]string, 0, len(f.sessions))
	for _, s := range f.sessions {
		lines = append(lines, s.Name+": "+s.Description)
	}
	return lines, nil
}

func (f *fakeStore) Create(name string) error {
	f.calls = append(f.calls, "create "+name)
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, session.Session{Name: tmuxNameReplacer.Replace(name), Description: "1 windows"})
	for _, extra := range f.alsoCreate {
		f.sessions = append(f.sessions, session.Session{Name: extra, Description: "1 windows"})
	}
	f.alsoCreate = nil
	return nil
}

func (f *fakeStore) Rename(target, name string) error {
	f.calls = append(f.calls, "rename "+target+" "+name)
	if f.renameErr != nil {
		return f.renameErr
	}
	for i := range f.sessions {
		if f.sessions[i].Name == target {
			f.sessions[i].Name = tmuxNameReplacer.Replace(name)
			return nil
		}
	}
	return &session.MutationError{Op: "rename-session", Target: target, Diagnostic: "can't find session: " + target}
}

func (f *fakeStore) Kill(target string) error {
	f.calls = append(f.calls, "kill "+target)
	if f.killErr != nil {
		return f.killErr
	}
	for i := range f.sessions {
		if f.sessions[i].Name == target {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return &session.MutationError{Op: "kill-session", Target: target, Diagnostic: "can't find session: " + target}
}

func (f *fakeStore) lastCall() string {
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func newTestHarness(t *testing.T, store *fakeStore, nested bool) *Harness {
	t.Helper()
	return NewHarness(NewModel(Options{
		Store:        store,
		Nested:       func() bool { return nested },
		DetachOthers: true,
		ShowLegend:   true,
	}))
}

func names(m *Model) []string {
	sessions := m.Registry().Sessions()
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.Name
	}
	return out
}

func selectedName(t *testing.T, m *Model) string {
	t.Helper()
	cur, ok := m.Registry().Current()
	if !ok {
		t.Fatalf("expected a selection, registry is empty")
	}
	return cur.Name
}

func assertBufferMatchesMode(t *testing.T, m *Model) {
	t.Helper()
	_, has := m.InputValue()
	if has != m.Mode().hasBuffer() {
		t.Fatalf("buffer presence %v does not match mode %s", has, m.Mode())
	}
}

var errBoom = errors.New("boom")
