package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"mirrsearch/internal/ui/input/types"
)

// Row is one line of the filter sidebar
type Row struct {
	Kind    types.ItemKind
	Key     string // agency code, CFR part, docket type, status or preset index
	Label   string
	Value   string // current text of a text row
	Checked bool
	Radio   bool
	Heading bool
	Hint    bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SidebarOpen   bool
	Rows          []Row
	Cursor        int
	SidebarOffset int
	ActiveCount   int

	Mode      types.Mode
	Prompt    string
	TextInput string // rendered text input while a field is edited
	Query     string

	Busy          bool
	Seq           uint64 // sequence number of the displayed results
	HasResults    bool
	ResultCount   int
	TotalResults  int
	ResultsText   string
	Payload       string // "" hides the advanced filters echo
	Stale         bool
	ErrText       string
	ResultsOffset int

	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// SidebarWidth is the width of the filter column including its border
const SidebarWidth = 48

// ChromeLines is the number of lines around the sidebar and results panel
const ChromeLines = 9

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	inner := width - 4 // main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state, inner))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBar(state, inner))
	content.WriteString("\n")

	bodyHeight := max(height-ChromeLines, 3)
	resultsWidth := inner
	var columns []string
	if state.SidebarOpen {
		// truncate long rows instead of wrapping them
		sidebar := lipgloss.NewStyle().MaxWidth(SidebarWidth - 2).Render(r.renderSidebar(state, bodyHeight))
		columns = append(columns, r.styles.Sidebar.Width(SidebarWidth-1).Render(sidebar))
		resultsWidth -= SidebarWidth
	}
	columns = append(columns, r.styles.Results.Width(max(resultsWidth, 10)).Render(r.renderResults(state, bodyHeight)))
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	content.WriteString("\n\n")

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Dim.Render(state.StatusMessage))
		content.WriteString("  ")
	}
	content.WriteString(r.styles.Help.Render("Press ? for help"))

	return r.styles.Main.MaxHeight(height).Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	left := r.styles.Title.Render("Mirrulations Explorer")

	var right []string
	if state.Busy {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = append(right, r.styles.StatusLoading.Render(spinner[frame]+" Searching"))
	}
	right = append(right, r.styles.Brand.Render("Mirrulations"), r.styles.Button.Render("[Log Out]"))
	rightContent := strings.Join(right, "  ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + rightContent
}

func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	var field string
	switch {
	case state.Mode == types.ModeQuery:
		field = state.TextInput
	case state.Query != "":
		field = state.Query
	default:
		field = r.styles.Dim.Render("Search query")
	}
	button := r.styles.Button.Render("[Search]")
	boxWidth := max(width-lipgloss.Width(button)-3, 20)
	box := r.styles.SearchBox.Width(boxWidth).Render(field)
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", button)
}

// window returns the lines visible from offset within height
func window(lines []string, offset, height int) []string {
	if offset > len(lines) {
		offset = len(lines)
	}
	if offset < 0 {
		offset = 0
	}
	end := min(offset+height, len(lines))
	return lines[offset:end]
}

func (r *Renderer) pad(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

func scrollMarker(offset, shown, total int) string {
	return fmt.Sprintf("%d-%d of %d lines", offset+1, offset+shown, total)
}
