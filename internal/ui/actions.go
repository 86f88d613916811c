package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	inputtypes "mirrsearch/internal/ui/input/types"
)

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.moveCursor(-1)
		case "down":
			m.moveCursor(1)
		case "pageup":
			m.moveCursor(-m.sidebarHeight())
		case "pagedown":
			m.moveCursor(m.sidebarHeight())
		case "home":
			m.moveCursorTo(false)
		case "end":
			m.moveCursorTo(true)
		}

	case inputtypes.ActivateAction:
		return m.activate()

	case inputtypes.ChangeModeAction:
		if a.Mode.IsText() {
			m.editOriginal = a.Data
			m.revealField(a.Mode)
		}

	case inputtypes.UpdateTextAction:
		m.setField(a.Mode, a.Text)
		m.clampCursor()

	case inputtypes.SubmitTextAction:
		m.setField(a.Mode, a.Text)
		m.clampCursor()
		if a.Mode == inputtypes.ModeQuery {
			return m.runSearch()
		}

	case inputtypes.CancelTextAction:
		m.setField(a.Mode, m.editOriginal)
		m.clampCursor()

	case inputtypes.SearchAction:
		return m.runSearch()

	case inputtypes.ClearFiltersAction:
		m.clearFilters()
		m.clampCursor()

	case inputtypes.PresetAction:
		m.filters.ApplyPreset(a.Index)

	case inputtypes.ToggleSidebarAction:
		m.sidebarOpen = !m.sidebarOpen

	case inputtypes.ScrollResultsAction:
		m.resultsOffset = max(m.resultsOffset+a.Delta*max(m.sidebarHeight()/2, 1), 0)

	case inputtypes.OpenResultsPagerAction:
		if rs := m.search.State().Results; rs != nil {
			return m.showInPager("results", m.formattedResults(rs))
		}

	case inputtypes.ShowHelpAction:
		return m.showInPager("help", NewHelpRenderer().RenderHelpContent())

	case inputtypes.LogoutAction:
		m.logout()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// revealField opens the section holding the field edited in mode and moves
// the cursor onto it
func (m *Model) revealField(mode inputtypes.Mode) {
	var kind inputtypes.ItemKind
	switch mode {
	case inputtypes.ModeAgencySearch:
		m.collapsed[sectionAgency] = false
		kind = inputtypes.ItemAgencySearch
	case inputtypes.ModeCfrSearch:
		m.collapsed[sectionCfr] = false
		kind = inputtypes.ItemCfrSearch
	case inputtypes.ModeYearFrom:
		kind = inputtypes.ItemYearFrom
	case inputtypes.ModeYearTo:
		kind = inputtypes.ItemYearTo
	default:
		return
	}
	m.sidebarOpen = true
	m.focusRow(kind, "")
}
