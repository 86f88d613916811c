package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(key, desc string) {
		help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(key), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("Mirrulations Explorer - Help"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Move through the filters")
	line("PgUp/PgDn", "Page up/down")
	line("gg/G", "Go to first/last filter")
	line("Tab", "Show/hide the filter sidebar")
	line("J/K", "Scroll the results")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filters"))
	help.WriteString("\n")
	line("Space/Enter", "Toggle the filter, edit a field or press a button")
	line("a", "Search agencies")
	line("p", "Search CFR parts (\"47\", \"part 47\")")
	line("1/2/3", "Date presets: 2021–2023, 2024, All time")
	line("c", "Clear all filters")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	line("/", "Edit the search query, Enter searches")
	line("s", "Search with the current filters")
	line("o", "Open the results in the pager")
	line("Esc", "Leave a field and restore its value")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("?", "Show this help")
	line("L", "Log Out (no accounts in this client)")
	line("q", "Quit")

	return help.String()
}

// Pager shows long content in ov while the TUI is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager bound to program
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show pages content using ov
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Do not write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that pages content
func (m *Model) showInPager(what, content string) tea.Cmd {
	m.inPagerMode = true
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{what: what, err: pager.Show(content)}
	}
}
