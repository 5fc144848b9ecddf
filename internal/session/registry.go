package session

// Registry is the ordered list of known sessions plus the selected index. The
// order is the store's order and is never changed locally. When the list is
// empty the selection is the sentinel 0 and Current reports no selection.
type Registry struct {
	sessions []Session
	selected int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Replace substitutes the whole session list and clamps the selection into
// range. Only the reconciliation engine should call it.
func (r *Registry) Replace(sessions []Session) {
	r.sessions = cloneSessions(sessions)
	r.clamp()
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	return len(r.sessions)
}

// Sessions returns a copy of the session list.
func (r *Registry) Sessions() []Session {
	return cloneSessions(r.sessions)
}

// Selected returns the selected index. It is meaningless on an empty registry.
func (r *Registry) Selected() int {
	return r.selected
}

// Current returns the selected session, or false when the registry is empty.
func (r *Registry) Current() (Session, bool) {
	if len(r.sessions) == 0 {
		return Session{}, false
	}
	return r.sessions[r.selected], true
}

// Select moves the selection to index i, clamped into range.
func (r *Registry) Select(i int) bool {
	if len(r.sessions) == 0 {
		r.selected = 0
		return false
	}
	old := r.selected
	r.selected = i
	r.clamp()
	return old != r.selected
}

// MoveSelection moves the selection by delta without wrapping around.
func (r *Registry) MoveSelection(delta int) bool {
	if len(r.sessions) == 0 {
		return false
	}
	return r.Select(r.selected + delta)
}

// JumpFirst selects the first session.
func (r *Registry) JumpFirst() bool {
	return r.Select(0)
}

// JumpLast selects the last session.
func (r *Registry) JumpLast() bool {
	return r.Select(len(r.sessions) - 1)
}

// IndexOf returns the position of the named session or -1.
func (r *Registry) IndexOf(name string) int {
	for i, s := range r.sessions {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the set of names currently in the registry.
func (r *Registry) Names() NameSet {
	return NamesOf(r.sessions)
}

func (r *Registry) clamp() {
	n := len(r.sessions)
	if n == 0 || r.selected < 0 {
		r.selected = 0
		return
	}
	if r.selected >= n {
		r.selected = n - 1
	}
}

func cloneSessions(sessions []Session) []Session {
	if len(sessions) == 0 {
		return nil
	}
	dup := make([]Session, len(sessions))
	copy(dup, sessions)
	return dup
}
