package tmux

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/atomicstack/tmm/internal/session"
	testutil "github.com/atomicstack/tmm/internal/testutil"
)

func TestStoreIntegration(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
	})

	store := NewStore(socket, noEnv)
	defer store.Close()

	before, ok := listNames(t, store)
	if !ok || !slices.Contains(before, "tmm-test") {
		t.Fatalf("expected seed session in %v", before)
	}

	if err := store.Create("8.1"); err != nil {
		t.Skipf("skipping: unable to create session (%v)", err)
	}
	waitForSession(t, socket, "8_1")
	after, _ := listNames(t, store)
	if !slices.Contains(after, "8_1") {
		t.Fatalf("expected tmux to rewrite 8.1 as 8_1, got %v", after)
	}

	if err := store.Rename("8_1", "renamed"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	waitForSession(t, socket, "renamed")

	if err := store.Kill("renamed"); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}
	if testutil.HasSession(socket, "renamed") {
		t.Fatalf("expected renamed session to be gone")
	}

	var mutErr *session.MutationError
	if err := store.Kill("renamed"); err == nil {
		t.Fatalf("expected kill of missing session to fail")
	} else if !errors.As(err, &mutErr) {
		t.Fatalf("expected MutationError, got %T", err)
	}
}

func listNames(t *testing.T, store *Store) ([]string, bool) {
	t.Helper()
	lines, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	sessions, ok := session.ParseLines(lines)
	names := make([]string, 0, len(sessions))
	for _, s := range sessions {
		names = append(names, s.Name)
	}
	return names, ok
}

func waitForSession(t *testing.T, socket, name string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if testutil.HasSession(socket, name) {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("session %s did not appear", name)
}
