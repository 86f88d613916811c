package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuery
	ModeAgencySearch
	ModeCfrSearch
	ModeYearFrom
	ModeYearTo
)

// IsText reports whether the mode edits a text field
func (m Mode) IsText() bool {
	return m != ModeNormal
}

// ItemKind identifies what a sidebar row controls
type ItemKind int

const (
	ItemNone ItemKind = iota // headings, hints and blank lines
	ItemSection
	ItemPreset
	ItemYearFrom
	ItemYearTo
	ItemAgencySearch
	ItemAgency
	ItemCfrSearch
	ItemCfrPart
	ItemDocketType
	ItemStatus
	ItemClear
	ItemApply
	ItemLogout
)

// Selectable reports whether the cursor may rest on a row of this kind
func (k ItemKind) Selectable() bool {
	return k != ItemNone
}

// TextMode returns the mode used to edit a row of this kind
func (k ItemKind) TextMode() (Mode, bool) {
	switch k {
	case ItemYearFrom:
		return ModeYearFrom, true
	case ItemYearTo:
		return ModeYearTo, true
	case ItemAgencySearch:
		return ModeAgencySearch, true
	case ItemCfrSearch:
		return ModeCfrSearch, true
	default:
		return ModeNormal, false
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentItem() ItemKind
	// FieldText returns the current value of the text field edited in mode
	FieldText(mode Mode) string
	HasResults() bool
	SidebarOpen() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	Enter(ctx Context) []Action
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
