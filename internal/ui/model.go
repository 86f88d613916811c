package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mirrsearch/internal/config"
	"mirrsearch/internal/domain"
	"mirrsearch/internal/eventbus"
	"mirrsearch/internal/filters"
	"mirrsearch/internal/search"
	"mirrsearch/internal/searchclient"
	"mirrsearch/internal/ui/input"
	inputtypes "mirrsearch/internal/ui/input/types"
	"mirrsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx     context.Context
	bus     eventbus.EventBus
	config  *config.Config
	filters *filters.State
	search  *search.Service

	width         int
	height        int
	sidebarOpen   bool
	collapsed     map[string]bool
	cursor        int
	sidebarOffset int
	resultsOffset int
	statusMessage string
	editOriginal  string // field value before the current edit, restored on cancel

	// formatted results, cached per result set
	resultsSeq  uint64
	resultsText string

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager
	inPagerMode  bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every search the model issues.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, fs *filters.State, svc *search.Service) *Model {
	m := &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		filters:      fs,
		search:       svc,
		sidebarOpen:  true,
		collapsed:    make(map[string]bool),
		height:       24,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPager(nil),
	}
	m.moveCursorTo(false)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchResultMsg:
		m.applyOutcome(msg.outcome)
		return m, nil

	case tickMsg:
		if m.search.Busy() && !m.inPagerMode {
			return m, tick()
		}
		return m, nil

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Error showing %s in pager: %v", msg.what, msg.err)
			m.statusMessage = fmt.Sprintf("Could not open %s: %v", msg.what, msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "pager " + msg.what, Err: msg.err})
			}
		}
		if m.search.Busy() {
			return m, tick()
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	st := m.search.State()

	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		SidebarOpen:   m.sidebarOpen,
		Rows:          m.buildRows(),
		Cursor:        m.cursor,
		SidebarOffset: m.sidebarOffset,
		ActiveCount:   m.filters.ActiveFilterCount(),
		Mode:          m.inputHandler.CurrentMode(),
		Prompt:        m.inputHandler.Prompt(),
		Query:         m.filters.Query(),
		Busy:          m.search.Busy(),
		Stale:         st.Stale,
		ResultsOffset: m.resultsOffset,
		StatusMessage: m.statusMessage,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.View()
	}
	if st.Err != nil {
		vs.ErrText = describeError(st.Err)
	}
	if st.Results != nil {
		vs.HasResults = true
		vs.Seq = st.Results.Seq
		vs.ResultCount = st.Results.Len()
		vs.TotalResults = st.Results.TotalResults
		vs.ResultsText = m.formattedResults(st.Results)
	}
	if !m.config.UISettings.HidePayload {
		vs.Payload = m.formattedPayload()
	}
	return vs
}

// runSearch issues a search for the current filters. The request runs in a
// command; its outcome comes back as a searchResultMsg.
func (m *Model) runSearch() tea.Cmd {
	ticket := m.search.Submit(m.filters.Snapshot())
	m.statusMessage = fmt.Sprintf("Searching (#%d)...", ticket.Seq)

	ctx, svc := m.ctx, m.search
	return tea.Batch(
		func() tea.Msg {
			return searchResultMsg{outcome: svc.Execute(ctx, ticket)}
		},
		tick(),
	)
}

func (m *Model) applyOutcome(out search.Outcome) {
	if !m.search.Apply(out) {
		return
	}
	if out.Err != nil {
		m.statusMessage = describeError(out.Err)
		return
	}
	m.resultsOffset = 0
	m.statusMessage = fmt.Sprintf("%d results in %s", len(out.Results), out.Duration.Round(time.Millisecond))
}

func (m *Model) clearFilters() {
	m.filters.Clear()
	m.statusMessage = "Filters cleared"
	if m.bus != nil {
		m.bus.Publish(eventbus.FiltersClearedEvent{})
	}
}

func (m *Model) logout() {
	m.statusMessage = "Log Out is not available: this client has no accounts"
}

// formattedResults indents the result records, reusing the last rendering
// while the result set is unchanged
func (m *Model) formattedResults(rs *domain.ResultSet) string {
	if rs.Seq == m.resultsSeq && m.resultsText != "" {
		return m.resultsText
	}
	results := rs.Results
	if results == nil {
		results = []domain.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Sprintf("could not format results: %v", err)
	}
	m.resultsSeq = rs.Seq
	m.resultsText = string(data)
	return m.resultsText
}

func (m *Model) formattedPayload() string {
	data, err := json.MarshalIndent(m.filters.AdvancedPayload(), "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// describeError turns a search failure into the line shown above the results
func describeError(err error) string {
	var te *searchclient.TransportError
	switch {
	case errors.As(err, &te) && te.StatusCode != 0:
		return fmt.Sprintf("Search failed: server answered %s", te.Status)
	case errors.Is(err, searchclient.ErrMalformedResponse):
		return "Search failed: the server sent a response that is not a JSON array"
	case errors.Is(err, context.DeadlineExceeded):
		return "Search failed: request timed out"
	default:
		return fmt.Sprintf("Search failed: %v", err)
	}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// modelContext implements the input Context on top of the model
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentItem() inputtypes.ItemKind {
	return c.m.currentRow().Kind
}

func (c *modelContext) FieldText(mode inputtypes.Mode) string {
	return c.m.fieldText(mode)
}

func (c *modelContext) HasResults() bool {
	return c.m.search.State().Results != nil
}

func (c *modelContext) SidebarOpen() bool {
	return c.m.sidebarOpen
}
