package session

// Reconcile derives a new registry from a fresh store snapshot. The snapshot's
// content and order win. If the previously selected session still exists it
// stays selected at its new position; otherwise the index is kept numerically
// and clamped, so after a delete the cursor lands on whatever now occupies
// that row rather than jumping back to the top.
func Reconcile(prev *Registry, snapshot []Session) *Registry {
	next := NewRegistry()
	if prev != nil {
		next.selected = prev.selected
	}
	next.Replace(snapshot)
	if prev == nil {
		return next
	}
	if current, ok := prev.Current(); ok {
		if idx := next.IndexOf(current.Name); idx >= 0 {
			next.selected = idx
		}
	}
	return next
}

// ReconcileDiscover reconciles and then, when exactly one name appeared that
// was not in before, selects it. Any other outcome leaves the selection
// produced by Reconcile untouched.
func ReconcileDiscover(prev *Registry, before NameSet, snapshot []Session, requested string) (*Registry, Discovery) {
	next := Reconcile(prev, snapshot)
	found := Discover(before, snapshot, requested)
	if found.Result == DiscoveryUnique {
		next.Select(next.IndexOf(found.Name))
	}
	return next, found
}
