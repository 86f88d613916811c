package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mirrsearch/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.ToggleSidebarAction{}}, true

	case tea.KeyEnter, tea.KeySpace:
		if !ctx.SidebarOpen() {
			return nil, true
		}
		// Text rows open their field for editing, everything else toggles
		if mode, ok := ctx.CurrentItem().TextMode(); ok {
			return []types.Action{types.ChangeModeAction{Mode: mode, Data: ctx.FieldText(mode)}}, true
		}
		if ctx.CurrentItem().Selectable() {
			return []types.Action{types.ActivateAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "J", "ctrl+d":
		return []types.Action{types.ScrollResultsAction{Delta: 1}}, true

	case "K", "ctrl+u":
		return []types.Action{types.ScrollResultsAction{Delta: -1}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeQuery,
			Data: ctx.FieldText(types.ModeQuery),
		}}, true

	case "a":
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeAgencySearch,
			Data: ctx.FieldText(types.ModeAgencySearch),
		}}, true

	case "p":
		return []types.Action{types.ChangeModeAction{
			Mode: types.ModeCfrSearch,
			Data: ctx.FieldText(types.ModeCfrSearch),
		}}, true

	case "s":
		return []types.Action{types.SearchAction{}}, true

	case "c":
		return []types.Action{types.ClearFiltersAction{}}, true

	case "1", "2", "3":
		return []types.Action{types.PresetAction{Index: int(msg.String()[0] - '1')}}, true

	case "o":
		if ctx.HasResults() {
			return []types.Action{types.OpenResultsPagerAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "L":
		return []types.Action{types.LogoutAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
