package ui

import "github.com/charmbracelet/bubbles/key"

// legends lists the hotkeys shown for each mode.
var legends = [...][]key.Binding{
	ModeBrowsing:         {keys.Attach, keys.AttachKeep, keys.Delete, keys.Rename, keys.Create, keys.Filter, keys.Refresh, keys.Quit},
	ModeFiltering:        {keys.Submit, keys.Cancel, keys.MatchPrev, keys.MatchNext},
	ModeConfirmingDelete: {keys.Confirm, keys.Deny, keys.Quit},
	ModeEnteringRename:   {keys.Submit, keys.Cancel},
	ModeEnteringCreate:   {keys.Submit, keys.Cancel},
	ModeNestedWarning:    {keys.Dismiss, keys.Quit},
}

var _ = [1]int{}[len(legends)-int(modeCount)]

func legendFor(mode Mode) []key.Binding {
	if mode < 0 || mode >= modeCount || len(legends[mode]) == 0 {
		return legends[ModeBrowsing]
	}
	return legends[mode]
}
