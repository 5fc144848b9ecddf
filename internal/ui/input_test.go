package ui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tmm/internal/session"
)

func pointer(t *testing.T, m *Model) int {
	t.Helper()
	row, ok := m.Matches().Pointer()
	if !ok {
		t.Fatalf("expected a match pointer")
	}
	return row
}

func TestFilterMatchesRows(t *testing.T) {
	h := newTestHarness(t, newFakeStore("work", "play"), false)
	h.Press("/")
	m := h.Model()
	if m.Mode() != ModeFiltering {
		t.Fatalf("expected filtering, got %s", m.Mode())
	}
	h.Type("wo")
	if got := m.Matches().Rows(); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected match set {0}, got %v", got)
	}
	if pointer(t, m) != 0 {
		t.Fatalf("expected pointer on row 0")
	}
	if !strings.Contains(h.View(), "1 of 2 match") {
		t.Fatalf("expected match count in status:\n%s", h.View())
	}
}

func TestFilterEmptyBufferMatchesNothing(t *testing.T) {
	h := newTestHarness(t, newFakeStore("work", "play"), false)
	h.Press("/")
	m := h.Model()
	if m.Matches().Len() != 0 {
		t.Fatalf("expected empty match set, got %v", m.Matches().Rows())
	}
	if _, ok := m.Matches().Pointer(); ok {
		t.Fatalf("expected no pointer")
	}
	h.Press("enter")
	if m.Mode() != ModeBrowsing || selectedName(t, m) != "work" {
		t.Fatalf("expected committing an empty filter to keep selection")
	}
}

func TestFilterNavigationAndCommit(t *testing.T) {
	h := newTestHarness(t, newFakeStore("alpha", "beta", "alphabet"), false)
	m := h.Model()
	h.Press("/")
	h.Type("alpha")
	if got := m.Matches().Rows(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("expected rows 0 and 2, got %v", got)
	}
	if pointer(t, m) != 0 {
		t.Fatalf("expected pointer on first match")
	}
	h.Press("down")
	if pointer(t, m) != 2 {
		t.Fatalf("expected pointer to skip to row 2, got %d", pointer(t, m))
	}
	h.Press("ctrl+n")
	if pointer(t, m) != 2 {
		t.Fatalf("expected pointer clamped at last match")
	}
	h.Press("up")
	if pointer(t, m) != 0 {
		t.Fatalf("expected pointer back on row 0")
	}
	h.Press("ctrl+p")
	if pointer(t, m) != 0 {
		t.Fatalf("expected pointer clamped at first match")
	}
	h.Press("end")
	if pointer(t, m) != 2 {
		t.Fatalf("expected end to point at last match")
	}
	h.Press("home")
	if pointer(t, m) != 0 {
		t.Fatalf("expected home to point at first match")
	}
	if m.Registry().Selected() != 0 {
		t.Fatalf("expected registry selection untouched while filtering")
	}

	h.Press("end", "enter")
	if m.Mode() != ModeBrowsing {
		t.Fatalf("expected browsing after commit, got %s", m.Mode())
	}
	if got := selectedName(t, m); got != "alphabet" {
		t.Fatalf("expected alphabet adopted, got %q", got)
	}
	if m.Matches().Len() != 0 {
		t.Fatalf("expected match set cleared on leaving filter")
	}
	assertBufferMatchesMode(t, m)
}

func TestFilterPointerContinuity(t *testing.T) {
	h := newTestHarness(t, newFakeStore("alpha", "beta", "alphabet"), false)
	m := h.Model()
	h.Press("/")
	h.Type("alpha")
	h.Press("down")
	h.Type("b")
	if got := m.Matches().Rows(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("expected only alphabet, got %v", got)
	}
	if pointer(t, m) != 2 {
		t.Fatalf("expected pointer to stay on row 2")
	}
	h.Press("backspace")
	if m.Matches().Filter() != "alpha" || pointer(t, m) != 2 {
		t.Fatalf("expected pointer kept on row 2 after backspace, filter %q", m.Matches().Filter())
	}
	h.Type("zz")
	if m.Matches().Len() != 0 {
		t.Fatalf("expected no matches")
	}
	if _, ok := m.Matches().Pointer(); ok {
		t.Fatalf("expected pointer dropped with no matches")
	}
	h.Press("enter")
	if got := selectedName(t, m); got != "alpha" {
		t.Fatalf("expected selection unchanged without a pointer, got %q", got)
	}
}

func TestFilterEscapeDiscards(t *testing.T) {
	h := newTestHarness(t, newFakeStore("alpha", "beta", "alphabet"), false)
	m := h.Model()
	h.Press("/")
	h.Type("alpha")
	h.Press("down", "esc")
	if m.Mode() != ModeBrowsing {
		t.Fatalf("expected browsing, got %s", m.Mode())
	}
	if got := selectedName(t, m); got != "alpha" {
		t.Fatalf("expected selection untouched by esc, got %q", got)
	}
	if m.Matches().Len() != 0 || m.Matches().Filter() != "" {
		t.Fatalf("expected match set cleared")
	}
	h.Press("/")
	if v, _ := m.InputValue(); v != "" {
		t.Fatalf("expected a fresh filter buffer, got %q", v)
	}
}

func TestFilterTypesCommandKeys(t *testing.T) {
	store := newFakeStore("work")
	h := newTestHarness(t, store, false)
	h.Press("/")
	h.Type("qxrn")
	m := h.Model()
	if m.Quitting() || m.Mode() != ModeFiltering {
		t.Fatalf("expected command keys to be typed, quitting=%v mode=%s", m.Quitting(), m.Mode())
	}
	if v, _ := m.InputValue(); v != "qxrn" {
		t.Fatalf("expected qxrn in buffer, got %q", v)
	}
	if len(store.calls) != 1 {
		t.Fatalf("expected no store traffic, got %v", store.calls)
	}
}

func TestFilterRecomputesOnRefresh(t *testing.T) {
	store := newFakeStore("work", "play")
	m := NewModel(Options{Store: store, Refresh: time.Second})
	h := NewHarness(m)
	h.Press("/")
	h.Type("wo")
	store.sessions = append(store.sessions, session.Session{Name: "world", Description: "1 windows"})
	m.Update(refreshTickMsg(time.Now()))
	if got := m.Matches().Rows(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("expected refreshed match set {0, 2}, got %v", got)
	}
	if pointer(t, m) != 0 {
		t.Fatalf("expected pointer kept on row 0")
	}
}

func TestFilterHighlightsOccurrences(t *testing.T) {
	h := newTestHarness(t, newFakeStore("work", "play"), false)
	h.Press("/")
	h.Type("rk")
	spans := h.Model().Matches().Spans(0)
	if len(spans) != 1 {
		t.Fatalf("expected one occurrence of rk in the work row, got %v", spans)
	}
	row := h.Model().rows[0]
	if row[spans[0].Start:spans[0].End] != "rk" {
		t.Fatalf("expected span to cover rk, got %q", row[spans[0].Start:spans[0].End])
	}
}
