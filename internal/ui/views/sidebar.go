package views

import (
	"fmt"
	"strings"

	"mirrsearch/internal/ui/input/types"
)

// renderSidebar renders the filter rows visible in height lines
func (r *Renderer) renderSidebar(state ViewState, height int) string {
	header := fmt.Sprintf("%s %s",
		r.styles.Title.Render("Advanced Search"),
		r.styles.Pill.Render(fmt.Sprintf("(%d active)", state.ActiveCount)))
	sub := r.styles.Hint.Render("Filters are the fastest way to narrow results.")

	lines := make([]string, 0, len(state.Rows))
	for i, row := range state.Rows {
		lines = append(lines, r.renderRow(state, row, i == state.Cursor))
	}

	visible := window(lines, state.SidebarOffset, max(height-2, 1))
	return strings.Join(append([]string{header, sub}, visible...), "\n")
}

func (r *Renderer) renderRow(state ViewState, row Row, selected bool) string {
	var line string
	switch {
	case row.Heading:
		line = r.styles.Section.Render(row.Label)
	case row.Hint:
		line = r.styles.Hint.Render(row.Label)
	case row.Kind == types.ItemSection:
		line = r.styles.Section.Render(row.Label)
	case row.Kind == types.ItemPreset:
		line = "  " + r.styles.Pill.Render("["+row.Label+"]")
	case row.Kind == types.ItemClear, row.Kind == types.ItemApply, row.Kind == types.ItemLogout:
		line = "  " + r.styles.Button.Render("["+row.Label+"]")
	default:
		if mode, ok := row.Kind.TextMode(); ok {
			value := row.Value
			if state.Mode == mode {
				value = state.TextInput
			} else if value == "" {
				value = r.styles.Dim.Render("…")
			}
			line = fmt.Sprintf("  %s %s", row.Label, value)
			break
		}
		line = "  " + r.checkbox(row) + " " + row.Label
	}

	if selected {
		return r.styles.SelectionBg.Render(r.pad("›"+strings.TrimPrefix(line, " "), SidebarWidth-2))
	}
	return line
}

func (r *Renderer) checkbox(row Row) string {
	switch {
	case row.Radio && row.Checked:
		return r.styles.Checked.Render("(•)")
	case row.Radio:
		return "( )"
	case row.Checked:
		return r.styles.Checked.Render("[x]")
	default:
		return "[ ]"
	}
}
