package ui

// OutcomeKind names the action to perform once the interface exits.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeAttach
	OutcomeSwitch
	OutcomeCreateAndEnter
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAttach:
		return "attach"
	case OutcomeSwitch:
		return "switch"
	case OutcomeCreateAndEnter:
		return "create-and-enter"
	default:
		return "none"
	}
}

// Outcome is the exit action chosen by the user.
type Outcome struct {
	Kind         OutcomeKind
	Target       string
	DetachOthers bool
}
