// Package ui contains the Bubble Tea program that drives the session list.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, window resizes and the
//     optional refresh tick).
//   - Key presses are dispatched on the active Mode. Browsing keys live in
//     navigation.go, filtering in input.go, rename and create entry in
//     forms.go, and the delete confirmation in confirm.go.
//   - Every mode change goes through setMode, which allocates the text entry
//     buffer for the filtering and entry modes and releases it otherwise.
//
// State ownership:
//   - The session list and selection live in session.Registry. It is replaced
//     wholesale after every store query by session.Reconcile, or by
//     session.ReconcileDiscover after a create or rename so the new name can
//     be selected.
//   - Filter matches live in internal/ui/state.Matches and are recomputed
//     from the rendered rows on each filter keystroke and each reconciliation.
//
// Store interactions are synchronous. A failed mutation stores the error,
// quits the program and is reported by the caller through Model.Err. The
// attach, switch or create-and-enter choice is reported through Model.Outcome
// and carried out after the program has exited.
package ui
