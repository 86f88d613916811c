package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"mirrsearch/internal/filters"
	"mirrsearch/internal/ui/input/types"
	"mirrsearch/internal/ui/views"
)

const (
	sectionAgency = "agency"
	sectionCfr    = "cfr"
)

// buildRows lays out the filter sidebar from the current filter state
func (m *Model) buildRows() []views.Row {
	fs := m.filters
	opts := fs.Options()
	from, to := fs.DateRange()

	rows := []views.Row{{Heading: true, Label: "Date Range"}}
	for i, p := range filters.DatePresets {
		rows = append(rows, views.Row{Kind: types.ItemPreset, Key: strconv.Itoa(i), Label: p.Label})
	}
	rows = append(rows,
		views.Row{Kind: types.ItemYearFrom, Label: "From:", Value: from},
		views.Row{Kind: types.ItemYearTo, Label: "To:  ", Value: to},
		views.Row{},
	)

	rows = append(rows, m.sectionRow(sectionAgency, "Agency"))
	if !m.collapsed[sectionAgency] {
		rows = append(rows, views.Row{Kind: types.ItemAgencySearch, Label: "Search:", Value: fs.AgencySearch()})
		agencies := fs.VisibleAgencies()
		for _, a := range agencies {
			label := a.Code
			if a.Name != "" {
				label = fmt.Sprintf("%s — %s", a.Code, a.Name)
			}
			rows = append(rows, views.Row{Kind: types.ItemAgency, Key: a.Code, Label: label, Checked: fs.AgencySelected(a.Code)})
		}
		if len(agencies) == 0 {
			rows = append(rows, views.Row{Hint: true, Label: "  No agencies match."})
		}
		if fs.ShowsDefaultWindow(filters.DimensionAgency) {
			rows = append(rows,
				views.Row{Hint: true, Label: fmt.Sprintf("  Showing top %d agencies.", opts.VisibleCap)},
				views.Row{Hint: true, Label: "  Selecting an agency moves it to the top."})
		}
	}
	rows = append(rows, views.Row{})

	rows = append(rows, m.sectionRow(sectionCfr, "CFR Part"))
	if !m.collapsed[sectionCfr] {
		rows = append(rows, views.Row{Kind: types.ItemCfrSearch, Label: "Search:", Value: fs.CfrSearch()})
		parts := fs.VisibleCfrParts()
		for _, p := range parts {
			rows = append(rows, views.Row{
				Kind:    types.ItemCfrPart,
				Key:     strconv.Itoa(p),
				Label:   fmt.Sprintf("Part %d", p),
				Checked: fs.CfrPartSelected(p),
			})
		}
		if len(parts) == 0 {
			rows = append(rows, views.Row{Hint: true, Label: "  No parts match."})
		}
		if fs.ShowsDefaultWindow(filters.DimensionCfrPart) {
			rows = append(rows,
				views.Row{Hint: true, Label: fmt.Sprintf("  Showing top %d parts.", opts.VisibleCap)},
				views.Row{Hint: true, Label: "  Selecting a part moves it to the top."})
		}
	}
	rows = append(rows, views.Row{})

	rows = append(rows, views.Row{Heading: true, Label: "Docket Type"})
	for _, t := range opts.DocketTypes {
		rows = append(rows, views.Row{Kind: types.ItemDocketType, Key: t, Label: t, Radio: true, Checked: fs.DocketType() == t})
	}
	rows = append(rows, views.Row{})

	rows = append(rows, views.Row{Heading: true, Label: "Status"})
	for _, s := range opts.Statuses {
		rows = append(rows, views.Row{Kind: types.ItemStatus, Key: s, Label: s, Checked: fs.HasStatus(s)})
	}
	rows = append(rows, views.Row{})

	rows = append(rows,
		views.Row{Kind: types.ItemClear, Label: "Clear"},
		views.Row{Kind: types.ItemApply, Label: "Apply"},
		views.Row{Kind: types.ItemLogout, Label: "Log Out"},
	)
	return rows
}

func (m *Model) sectionRow(key, title string) views.Row {
	chev := "▾"
	if m.collapsed[key] {
		chev = "▸"
	}
	return views.Row{Kind: types.ItemSection, Key: key, Label: title + " " + chev}
}

// currentRow returns the row under the cursor
func (m *Model) currentRow() views.Row {
	rows := m.buildRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return views.Row{}
	}
	return rows[m.cursor]
}

// moveCursor moves by delta selectable rows, stopping at the ends
func (m *Model) moveCursor(delta int) {
	rows := m.buildRows()
	step := 1
	if delta < 0 {
		step, delta = -1, -delta
	}
	for ; delta > 0; delta-- {
		next := m.cursor + step
		for next >= 0 && next < len(rows) && !rows[next].Kind.Selectable() {
			next += step
		}
		if next < 0 || next >= len(rows) {
			break
		}
		m.cursor = next
	}
	m.ensureCursorVisible()
}

// moveCursorTo puts the cursor on the first or last selectable row
func (m *Model) moveCursorTo(end bool) {
	rows := m.buildRows()
	if end {
		m.cursor = len(rows)
		m.moveCursor(-1)
		return
	}
	m.cursor = -1
	m.moveCursor(1)
}

// focusRow moves the cursor to the row of kind and key; it reports false
// when no such row is displayed.
func (m *Model) focusRow(kind types.ItemKind, key string) bool {
	for i, row := range m.buildRows() {
		if row.Kind == kind && (key == "" || row.Key == key) {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// clampCursor keeps the cursor on a selectable row after the rows changed
func (m *Model) clampCursor() {
	rows := m.buildRows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if !rows[m.cursor].Kind.Selectable() {
		before := m.cursor
		m.moveCursor(1)
		if m.cursor == before {
			m.moveCursor(-1)
		}
	}
	m.ensureCursorVisible()
}

func (m *Model) sidebarHeight() int {
	return max(m.height-views.ChromeLines-2, 1)
}

func (m *Model) ensureCursorVisible() {
	h := m.sidebarHeight()
	if m.cursor < m.sidebarOffset {
		m.sidebarOffset = m.cursor
	}
	if m.cursor >= m.sidebarOffset+h {
		m.sidebarOffset = m.cursor - h + 1
	}
	if m.sidebarOffset < 0 {
		m.sidebarOffset = 0
	}
}

// activate toggles or presses the row under the cursor
func (m *Model) activate() tea.Cmd {
	row := m.currentRow()
	switch row.Kind {
	case types.ItemSection:
		m.collapsed[row.Key] = !m.collapsed[row.Key]
	case types.ItemPreset:
		i, _ := strconv.Atoi(row.Key)
		m.filters.ApplyPreset(i)
	case types.ItemAgency:
		m.filters.ToggleAgency(row.Key)
		m.focusRow(types.ItemAgency, row.Key)
	case types.ItemCfrPart:
		part, err := strconv.Atoi(row.Key)
		if err == nil {
			m.filters.ToggleCfrPart(part)
			m.focusRow(types.ItemCfrPart, row.Key)
		}
	case types.ItemDocketType:
		m.filters.SetDocketType(row.Key)
	case types.ItemStatus:
		m.filters.ToggleStatus(row.Key)
	case types.ItemClear:
		m.clearFilters()
	case types.ItemApply:
		return m.runSearch()
	case types.ItemLogout:
		m.logout()
	}
	m.clampCursor()
	return nil
}

// fieldText returns the stored value of the field edited in mode
func (m *Model) fieldText(mode types.Mode) string {
	switch mode {
	case types.ModeQuery:
		return m.filters.Query()
	case types.ModeAgencySearch:
		return m.filters.AgencySearch()
	case types.ModeCfrSearch:
		return m.filters.CfrSearch()
	case types.ModeYearFrom:
		from, _ := m.filters.DateRange()
		return from
	case types.ModeYearTo:
		_, to := m.filters.DateRange()
		return to
	}
	return ""
}

// setField stores text in the field edited in mode
func (m *Model) setField(mode types.Mode, text string) {
	switch mode {
	case types.ModeQuery:
		m.filters.SetQuery(text)
	case types.ModeAgencySearch:
		m.filters.SetAgencySearch(text)
	case types.ModeCfrSearch:
		m.filters.SetCfrSearch(text)
	case types.ModeYearFrom:
		m.filters.SetDateFrom(text)
	case types.ModeYearTo:
		m.filters.SetDateTo(text)
	}
}
