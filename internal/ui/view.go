package ui

import (
	"fmt"
	"strings"

	uistate "github.com/atomicstack/tmm/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	title          = "Tmux Session Manager"
	selectedMarker = ">> "
	plainMarker    = "   "
	// frameChrome is the border plus horizontal padding of the list frame.
	frameChrome = 4
)

// View renders the list, any popup for the active mode, and the legend.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	header := render(styles.Title, title)
	status := m.statusView()
	footer := m.footerView()
	cursor := m.cursorRow()
	start, end := m.viewport.Range(len(m.rows), m.listHeight(header, status, footer))

	var list string
	if len(m.rows) == 0 {
		list = render(styles.Info, "no sessions")
	} else {
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(i, i == cursor))
		}
		list = strings.Join(lines, "\n")
	}

	frame := lipgloss.NewStyle()
	if styles.Frame != nil {
		frame = *styles.Frame
	}
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}
	out := frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, list, status))
	if footer != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, footer)
	}
	return out
}

// syncViewport keeps the highlighted row on screen. It runs after every
// update so View never has to adjust state.
func (m *Model) syncViewport() {
	header := render(styles.Title, title)
	rows := m.listHeight(header, m.statusView(), m.footerView())
	m.viewport.Follow(m.cursorRow(), len(m.rows), rows)
}

// listHeight returns how many rows fit between the header and the footer.
// Zero means unbounded.
func (m *Model) listHeight(header, status, footer string) int {
	if m.height <= 0 {
		return 0
	}
	used := lipgloss.Height(header) + lipgloss.Height(status) + 2
	if footer != "" {
		used += lipgloss.Height(footer)
	}
	return max(m.height-used, 1)
}

// cursorRow is the row drawn as selected: the match pointer while
// filtering, otherwise the registry selection.
func (m *Model) cursorRow() int {
	if m.mode == ModeFiltering {
		if row, ok := m.matches.Pointer(); ok {
			return row
		}
	}
	return m.registry.Selected()
}

func (m *Model) renderRow(i int, selected bool) string {
	var spans []uistate.Span
	if m.mode == ModeFiltering {
		spans = m.matches.Spans(i)
	}
	base, marker := styles.Item, render(styles.ItemIndicator, plainMarker)
	if selected {
		base, marker = styles.SelectedItem, render(styles.SelectedItemIndicator, selectedMarker)
	}
	line := marker + highlight(m.rows[i], spans, base)
	if width := m.width - frameChrome; m.width > 0 && width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// highlight renders row with each span in the match style.
func highlight(row string, spans []uistate.Span, base *lipgloss.Style) string {
	if len(spans) == 0 {
		return render(base, row)
	}
	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start > pos {
			b.WriteString(render(base, row[pos:span.Start]))
		}
		b.WriteString(render(styles.Match, row[span.Start:span.End]))
		pos = span.End
	}
	if pos < len(row) {
		b.WriteString(render(base, row[pos:]))
	}
	return b.String()
}

func (m *Model) statusView() string {
	total := len(m.rows)
	if m.mode == ModeFiltering {
		return render(styles.Footer, fmt.Sprintf("%d of %d match", m.matches.Len(), total))
	}
	noun := "sessions"
	if total == 1 {
		noun = "session"
	}
	return render(styles.Footer, fmt.Sprintf("%d %s", total, noun))
}

func (m *Model) footerView() string {
	var parts []string
	switch m.mode {
	case ModeFiltering:
		parts = append(parts, m.input.View())
	case ModeEnteringRename:
		cur, _ := m.registry.Current()
		parts = append(parts, m.popup("Rename "+cur.Name, m.input.View(), "Enter to rename, Esc to cancel"))
	case ModeEnteringCreate:
		parts = append(parts, m.popup("New Session", m.input.View(), "Enter to create, Esc to cancel"))
	case ModeConfirmingDelete:
		cur, _ := m.registry.Current()
		parts = append(parts, m.popup("Confirm Delete", fmt.Sprintf("Are you sure you want to delete %s?", cur.Name), "[Y]es / [N]o"))
	case ModeNestedWarning:
		parts = append(parts, m.popup("Error", "Cannot create nested session.", "Press any key to continue."))
	}
	if m.showLegend {
		parts = append(parts, m.help.ShortHelpView(legendFor(m.mode)))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) popup(heading, body, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		render(styles.PopupTitle, heading),
		"",
		body,
		render(styles.PopupHint, hint),
	)
	box := render(styles.Popup, content)
	if m.width > 0 {
		box = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	}
	return box
}

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}
