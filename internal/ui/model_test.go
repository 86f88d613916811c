package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirrsearch/internal/config"
	"mirrsearch/internal/domain"
	"mirrsearch/internal/filters"
	"mirrsearch/internal/search"
	"mirrsearch/internal/searchclient"
	inputtypes "mirrsearch/internal/ui/input/types"
)

type fakeSearcher struct {
	mu   sync.Mutex
	err  error
	reqs []domain.QueryRequest
}

func (f *fakeSearcher) Search(ctx context.Context, req domain.QueryRequest) (*searchclient.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	raw, _ := json.Marshal(map[string]string{"docketId": "EPA-HQ-0001", "text": req.Text})
	return &searchclient.Response{Results: []domain.Result{raw}, TotalResults: 42}, nil
}

func (f *fakeSearcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSearcher) requests() []domain.QueryRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.QueryRequest(nil), f.reqs...)
}

func newTestModel(t *testing.T, cfg *config.Config) (*Model, *fakeSearcher) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fake := &fakeSearcher{}
	m := NewModel(context.Background(), nil, cfg, filters.New(filters.Options{}), search.NewService(fake, nil))
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 80})
	return m, fake
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// messages runs cmd and flattens batches into the messages they produce
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, messages(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// collect runs cmd and returns the search outcomes it produced. Ticks,
// blinks and other housekeeping messages are dropped.
func collect(cmd tea.Cmd) []searchResultMsg {
	var out []searchResultMsg
	for _, msg := range messages(cmd) {
		if res, ok := msg.(searchResultMsg); ok {
			out = append(out, res)
		}
	}
	return out
}

// deliver runs cmd and feeds the search outcomes back into the model
func deliver(m *Model, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
}

func TestInitialView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "Mirrulations Explorer")
	assert.Contains(t, view, "(0 active)")
	assert.Contains(t, view, "EPA — Environmental Protection Agency")
	assert.Contains(t, view, "Showing top 5 agencies.")
	assert.Contains(t, view, "Selecting an agency moves it to the top.")
	assert.Contains(t, view, "Part 5")
	assert.NotContains(t, view, "Part 6")
	assert.Contains(t, view, "Advanced filters")
	assert.Contains(t, view, "[Log Out]")
	assert.Equal(t, inputtypes.ItemPreset, m.currentRow().Kind)
}

func TestViewBeforeFirstResize(t *testing.T) {
	fake := &fakeSearcher{}
	m := NewModel(context.Background(), nil, config.DefaultConfig(), filters.New(filters.Options{}), search.NewService(fake, nil))
	assert.Equal(t, "Loading...", m.View())
}

func TestSpaceTogglesAgencyAndKeepsCursorOnIt(t *testing.T) {
	m, _ := newTestModel(t, nil)
	require.True(t, m.focusRow(inputtypes.ItemAgency, "DOT"))

	press(m, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, []string{"DOT"}, m.filters.SelectedAgencies())
	assert.Equal(t, "DOT", m.currentRow().Key)
	assert.Equal(t, []string{"DOT", "EPA", "HHS", "FDA", "CMS"}, m.filters.VisibleChoices(filters.DimensionAgency))
	assert.Contains(t, m.View(), "(1 active)")
}

func TestNavigationSkipsHeadingsAndHints(t *testing.T) {
	m, _ := newTestModel(t, nil)

	for range 60 {
		press(m, keyRunes("j"))
		assert.True(t, m.currentRow().Kind.Selectable())
	}
	assert.Equal(t, inputtypes.ItemLogout, m.currentRow().Kind)

	press(m, keyRunes("g"), keyRunes("g"))
	assert.Equal(t, inputtypes.ItemPreset, m.currentRow().Kind)

	press(m, keyRunes("G"))
	assert.Equal(t, inputtypes.ItemLogout, m.currentRow().Kind)
}

func TestQueryEnterRunsSearch(t *testing.T) {
	m, fake := newTestModel(t, nil)

	press(m, keyRunes("/"))
	assert.Equal(t, inputtypes.ModeQuery, m.inputHandler.CurrentMode())
	press(m, keyRunes("clean air"))
	assert.Equal(t, "clean air", m.filters.Query())

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.True(t, m.search.Busy())

	deliver(m, cmd)

	require.Len(t, fake.requests(), 1)
	assert.Equal(t, domain.QueryRequest{Text: "clean air"}, fake.requests()[0])
	assert.False(t, m.search.Busy())

	view := m.View()
	assert.Contains(t, view, "EPA-HQ-0001")
	assert.Contains(t, view, "1 of 42 results")
}

func TestSearchCollapsesToMostRecentSelection(t *testing.T) {
	m, fake := newTestModel(t, nil)
	m.filters.ToggleAgency("EPA")
	m.filters.ToggleAgency("FDA")
	m.filters.ToggleCfrPart(40)
	m.filters.SetDocketType("Rulemaking")

	deliver(m, press(m, keyRunes("s")))

	require.Len(t, fake.requests(), 1)
	assert.Equal(t, domain.QueryRequest{DocketType: "Rulemaking", Agency: "FDA", CfrPart: "40"}, fake.requests()[0])
}

func TestEscRestoresField(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, keyRunes("a"), keyRunes("x"))
	assert.Equal(t, "x", m.filters.AgencySearch())
	assert.Empty(t, m.filters.VisibleAgencies())
	assert.Contains(t, m.View(), "No agencies match.")

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Empty(t, m.filters.AgencySearch())
	assert.Len(t, m.filters.VisibleAgencies(), 5)
}

func TestCfrSearchAcceptsPartPrefix(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, keyRunes("p"), keyRunes("part 47"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "part 47", m.filters.CfrSearch())
	assert.Equal(t, []int{47, 147}, m.filters.VisibleCfrParts())
	assert.NotContains(t, m.View(), "Showing top 5 parts")
}

func TestYearFieldsAreEditedInPlace(t *testing.T) {
	m, _ := newTestModel(t, nil)
	require.True(t, m.focusRow(inputtypes.ItemYearFrom, ""))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputtypes.ModeYearFrom, m.inputHandler.CurrentMode())
	press(m, keyRunes("2019"), tea.KeyMsg{Type: tea.KeyEnter})

	from, to := m.filters.DateRange()
	assert.Equal(t, "2019", from)
	assert.Empty(t, to)
	assert.Equal(t, 1, m.filters.ActiveFilterCount())
}

func TestPresetKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, keyRunes("1"))
	from, to := m.filters.DateRange()
	assert.Equal(t, "2021", from)
	assert.Equal(t, "2023", to)

	press(m, keyRunes("3"))
	from, to = m.filters.DateRange()
	assert.Empty(t, from)
	assert.Empty(t, to)
}

func TestClearKey(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.filters.ToggleAgency("EPA")
	m.filters.ToggleStatus(domain.StatusOpen)
	m.filters.SetQuery("water")

	press(m, keyRunes("c"))

	assert.Equal(t, 0, m.filters.ActiveFilterCount())
	assert.Empty(t, m.filters.Query())
	assert.Equal(t, "Filters cleared", m.statusMessage)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.filters.SetQuery("first")
	first := m.runSearch()
	m.filters.SetQuery("second")
	second := m.runSearch()

	deliver(m, second)
	deliver(m, first)

	st := m.search.State()
	require.NotNil(t, st.Results)
	assert.Equal(t, "second", st.Results.Request.Text)
	assert.Equal(t, uint64(2), st.Results.Seq)
	assert.False(t, m.search.Busy())
}

func TestFailureKeepsResultsMarkedStale(t *testing.T) {
	m, fake := newTestModel(t, nil)
	deliver(m, press(m, keyRunes("s")))

	fake.fail(&searchclient.TransportError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"})
	deliver(m, press(m, keyRunes("s")))

	st := m.search.State()
	require.Error(t, st.Err)
	assert.True(t, st.Stale)
	assert.Equal(t, uint64(1), st.Results.Seq)

	view := m.View()
	assert.Contains(t, view, "Search failed: server answered 500 Internal Server Error")
	assert.Contains(t, view, "stale: showing results of search #1")
	assert.Contains(t, view, "EPA-HQ-0001")
}

func TestHidePayload(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.HidePayload = true
	m, _ := newTestModel(t, cfg)

	assert.NotContains(t, m.View(), "Advanced filters")
}

func TestSectionCollapse(t *testing.T) {
	m, _ := newTestModel(t, nil)
	require.True(t, m.focusRow(inputtypes.ItemSection, sectionAgency))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.focusRow(inputtypes.ItemAgency, ""))
	assert.NotContains(t, m.View(), "Environmental Protection Agency")

	// searching agencies opens the section again
	press(m, keyRunes("a"))
	assert.Equal(t, inputtypes.ItemAgencySearch, m.currentRow().Kind)
	assert.False(t, m.collapsed[sectionAgency])
}

func TestToggleSidebar(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.sidebarOpen)
	assert.NotContains(t, m.View(), "Advanced Search")

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Advanced Search")
}

func TestLogoutIsInert(t *testing.T) {
	m, fake := newTestModel(t, nil)
	m.filters.ToggleAgency("EPA")

	press(m, keyRunes("L"))

	assert.Contains(t, m.statusMessage, "not available")
	assert.Equal(t, 1, m.filters.ActiveFilterCount())
	assert.Empty(t, fake.requests())
}

func TestPagerWithoutProgramReportsError(t *testing.T) {
	m, _ := newTestModel(t, nil)

	cmd := press(m, keyRunes("?"))
	require.NotNil(t, cmd)
	assert.True(t, m.inPagerMode)

	for _, msg := range messages(cmd) {
		if _, ok := msg.(pagerMsg); ok {
			m.Update(msg)
		}
	}
	assert.False(t, m.inPagerMode)
	assert.Contains(t, m.statusMessage, "Could not open help")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	cmd := press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Contains(t, messages(cmd), tea.Msg(tea.QuitMsg{}))
}
