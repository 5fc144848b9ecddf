package session

import "testing"

func newTestRegistry(names ...string) *Registry {
	sessions := make([]Session, len(names))
	for i, name := range names {
		sessions[i] = Session{Name: name}
	}
	r := NewRegistry()
	r.Replace(sessions)
	return r
}

func TestReplaceKeepsSelectionInRange(t *testing.T) {
	r := newTestRegistry("a", "b", "c")
	r.Select(2)
	for _, snapshot := range [][]string{{"a"}, {"a", "b"}, {"x", "y", "z", "w"}, {"q"}} {
		sessions := make([]Session, len(snapshot))
		for i, name := range snapshot {
			sessions[i] = Session{Name: name}
		}
		r.Replace(sessions)
		if sel := r.Selected(); sel < 0 || sel >= r.Len() {
			t.Fatalf("selection %d out of range for %d sessions", sel, r.Len())
		}
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	r := newTestRegistry("a", "b", "c")
	if r.MoveSelection(-1) {
		t.Fatalf("expected no movement above the first entry")
	}
	if r.Selected() != 0 {
		t.Fatalf("expected selection 0, got %d", r.Selected())
	}
	if !r.MoveSelection(1) || r.Selected() != 1 {
		t.Fatalf("expected selection 1, got %d", r.Selected())
	}
	r.JumpLast()
	if r.MoveSelection(1) {
		t.Fatalf("expected no movement past the last entry")
	}
	if r.Selected() != 2 {
		t.Fatalf("expected selection 2, got %d", r.Selected())
	}
	if !r.MoveSelection(-5) || r.Selected() != 0 {
		t.Fatalf("expected large negative delta to clamp at 0, got %d", r.Selected())
	}
}

func TestEmptyRegistryOperationsAreNoOps(t *testing.T) {
	r := NewRegistry()
	if r.MoveSelection(1) || r.MoveSelection(-1) || r.JumpFirst() || r.JumpLast() || r.Select(3) {
		t.Fatalf("expected no movement on an empty registry")
	}
	if _, ok := r.Current(); ok {
		t.Fatalf("expected no current session on an empty registry")
	}
	if r.Selected() != 0 {
		t.Fatalf("expected sentinel selection 0, got %d", r.Selected())
	}
}

func TestJumpFirstLast(t *testing.T) {
	r := newTestRegistry("a", "b", "c")
	if !r.JumpLast() {
		t.Fatalf("expected jump to last")
	}
	if cur, _ := r.Current(); cur.Name != "c" {
		t.Fatalf("expected c, got %q", cur.Name)
	}
	if !r.JumpFirst() {
		t.Fatalf("expected jump to first")
	}
	if cur, _ := r.Current(); cur.Name != "a" {
		t.Fatalf("expected a, got %q", cur.Name)
	}
}

func TestSessionsReturnsCopy(t *testing.T) {
	r := newTestRegistry("a")
	list := r.Sessions()
	list[0].Name = "changed"
	if cur, _ := r.Current(); cur.Name != "a" {
		t.Fatalf("expected registry unaffected by caller mutation, got %q", cur.Name)
	}
}
