package views

import (
	"fmt"
	"strings"
)

// renderResults renders the advanced filters echo and the result set
func (r *Renderer) renderResults(state ViewState, height int) string {
	var lines []string

	if state.Payload != "" {
		lines = append(lines, r.styles.BoxTitle.Render("Advanced filters"))
		lines = append(lines, strings.Split(state.Payload, "\n")...)
		lines = append(lines, "")
	}

	title := r.styles.BoxTitle.Render("Search results")
	if state.HasResults {
		count := fmt.Sprintf("%d results", state.ResultCount)
		if state.TotalResults > state.ResultCount {
			count = fmt.Sprintf("%d of %d results", state.ResultCount, state.TotalResults)
		}
		title += "  " + r.styles.Dim.Render(count)
	}
	lines = append(lines, title)

	if state.ErrText != "" {
		lines = append(lines, r.styles.StatusError.Render("✗ "+state.ErrText))
	}
	if state.Stale {
		lines = append(lines, r.styles.StatusWarning.Render(fmt.Sprintf("stale: showing results of search #%d", state.Seq)))
	}

	switch {
	case state.HasResults:
		lines = append(lines, strings.Split(state.ResultsText, "\n")...)
	case state.Busy:
		lines = append(lines, r.styles.Dim.Render("Searching..."))
	case state.ErrText == "":
		lines = append(lines, r.styles.Dim.Render("No search yet. Press / to type a query, s to search."))
	}

	if len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	offset := min(state.ResultsOffset, len(lines)-(height-1))
	shown := window(lines, offset, height-1)
	return strings.Join(append(shown, r.styles.Scroll.Render(scrollMarker(offset, len(shown), len(lines)))), "\n")
}
