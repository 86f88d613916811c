package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Brand         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Sidebar       lipgloss.Style
	Results       lipgloss.Style
	SearchBox     lipgloss.Style
	Section       lipgloss.Style
	BoxTitle      lipgloss.Style
	Hint          lipgloss.Style
	Pill          lipgloss.Style
	Button        lipgloss.Style
	Checked       lipgloss.Style
	Scroll        lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Brand: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Help:  lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("241")).
			PaddingRight(1),
		Results: lipgloss.NewStyle().PaddingLeft(2),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		BoxTitle:      lipgloss.NewStyle().Bold(true).Underline(true),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Pill:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Button:        lipgloss.NewStyle().Bold(true),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
