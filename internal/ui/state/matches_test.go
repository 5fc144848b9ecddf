package state

import (
	"reflect"
	"testing"
)

func TestOccurrencesNonOverlapping(t *testing.T) {
	got := Occurrences("aaaa", "aa")
	want := []Span{{0, 2}, {2, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if Occurrences("Work", "work") != nil {
		t.Fatalf("expected case-sensitive matching")
	}
	if Occurrences("work", "") != nil {
		t.Fatalf("expected no occurrences for empty filter")
	}
	if got := Occurrences("a.b.c", "."); !reflect.DeepEqual(got, []Span{{1, 2}, {3, 4}}) {
		t.Fatalf("expected literal match of '.', got %v", got)
	}
}

func TestRecomputeScenario(t *testing.T) {
	m := NewMatches()
	m.Recompute([]string{"work: 1 windows", "play: 2 windows"}, "wo")
	if !reflect.DeepEqual(m.Rows(), []int{0}) {
		t.Fatalf("expected match set {0}, got %v", m.Rows())
	}
	if p, ok := m.Pointer(); !ok || p != 0 {
		t.Fatalf("expected pointer 0, got %d %v", p, ok)
	}
}

func TestRecomputeEmptyFilterMatchesNothing(t *testing.T) {
	m := NewMatches()
	m.Recompute([]string{"work", "play"}, "")
	if m.Len() != 0 {
		t.Fatalf("expected empty match set, got %v", m.Rows())
	}
	if _, ok := m.Pointer(); ok {
		t.Fatalf("expected no pointer")
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	rows := []string{"alpha", "beta", "alphabet"}
	m := NewMatches()
	m.Recompute(rows, "alpha")
	m.Step(1)
	firstRows := m.Rows()
	firstPtr, _ := m.Pointer()
	m.Recompute(rows, "alpha")
	secondPtr, _ := m.Pointer()
	if !reflect.DeepEqual(firstRows, m.Rows()) || firstPtr != secondPtr {
		t.Fatalf("expected identical results, got %v/%d then %v/%d", firstRows, firstPtr, m.Rows(), secondPtr)
	}
}

func TestRecomputePointerContinuity(t *testing.T) {
	rows := []string{"ab", "abc", "abcd"}
	m := NewMatches()
	m.Recompute(rows, "ab")
	m.Last()
	m.Recompute(rows, "abc")
	if p, _ := m.Pointer(); p != 2 {
		t.Fatalf("expected pointer kept on row 2, got %d", p)
	}
	m.Recompute(rows, "abcd")
	if p, _ := m.Pointer(); p != 2 {
		t.Fatalf("expected pointer still on row 2, got %d", p)
	}
	m.Recompute([]string{"abcd", "x", "y"}, "x")
	if p, _ := m.Pointer(); p != 1 {
		t.Fatalf("expected pointer reset to first match 1, got %d", p)
	}
	m.Recompute(rows, "zzz")
	if _, ok := m.Pointer(); ok {
		t.Fatalf("expected pointer cleared when nothing matches")
	}
}

func TestStepClampsWithinMatches(t *testing.T) {
	m := NewMatches()
	m.Recompute([]string{"x1", "y", "x2", "x3"}, "x")
	if m.Step(-1) {
		t.Fatalf("expected no movement before first match")
	}
	if !m.Step(1) {
		t.Fatalf("expected movement to next match")
	}
	if p, _ := m.Pointer(); p != 2 {
		t.Fatalf("expected pointer 2, got %d", p)
	}
	m.Step(1)
	if m.Step(1) {
		t.Fatalf("expected no movement past last match")
	}
	if p, _ := m.Pointer(); p != 3 {
		t.Fatalf("expected pointer 3, got %d", p)
	}
	if !m.First() {
		t.Fatalf("expected jump to first match")
	}
	if p, _ := m.Pointer(); p != 0 {
		t.Fatalf("expected pointer 0, got %d", p)
	}
}

func TestClear(t *testing.T) {
	m := NewMatches()
	m.Recompute([]string{"x"}, "x")
	m.Clear()
	if m.Len() != 0 || m.Filter() != "" {
		t.Fatalf("expected cleared set")
	}
	if _, ok := m.Pointer(); ok {
		t.Fatalf("expected pointer cleared")
	}
	if m.Step(1) || m.First() || m.Last() {
		t.Fatalf("expected no movement on empty set")
	}
}
