package ui

// Mode is the active interaction mode. Exactly one is active at a time.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeFiltering
	ModeConfirmingDelete
	ModeEnteringRename
	ModeEnteringCreate
	ModeNestedWarning

	modeCount
)

// EntryKind distinguishes the two text-entry modes.
type EntryKind int

const (
	EntryNone EntryKind = iota
	EntryRename
	EntryCreate
)

var modeNames = [...]string{
	ModeBrowsing:         "browsing",
	ModeFiltering:        "filtering",
	ModeConfirmingDelete: "confirming-delete",
	ModeEnteringRename:   "entering-rename",
	ModeEnteringCreate:   "entering-create",
	ModeNestedWarning:    "nested-warning",
}

var _ = [1]int{}[len(modeNames)-int(modeCount)]

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Entering reports which entry buffer the mode edits, if any.
func (m Mode) Entering() EntryKind {
	switch m {
	case ModeEnteringRename:
		return EntryRename
	case ModeEnteringCreate:
		return EntryCreate
	default:
		return EntryNone
	}
}

// hasBuffer reports whether the mode owns a text entry buffer.
func (m Mode) hasBuffer() bool {
	return m == ModeFiltering || m.Entering() != EntryNone
}
