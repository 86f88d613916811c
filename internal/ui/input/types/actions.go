package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction toggles or presses the sidebar row under the cursor
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type PresetAction struct {
	Index int
}

func (a PresetAction) Type() string { return "preset" }

type ToggleSidebarAction struct{}

func (a ToggleSidebarAction) Type() string { return "toggle_sidebar" }

type ScrollResultsAction struct {
	Delta int
}

func (a ScrollResultsAction) Type() string { return "scroll_results" }

type OpenResultsPagerAction struct{}

func (a OpenResultsPagerAction) Type() string { return "open_results_pager" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
