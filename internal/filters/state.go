// Package filters holds the filter sidebar state: the free-text query, the
// date range, docket type, statuses, and the agency and CFR part selections
// together with the derived views computed from them.
package filters

import (
	"slices"
	"strconv"
	"strings"

	"mirrsearch/internal/directory"
	"mirrsearch/internal/domain"
)

// State is the single source of truth for the filter selections. It is not
// safe for concurrent use; the UI mutates it from its update loop only.
type State struct {
	opts     Options
	cfrParts []int

	query      string
	dateFrom   string
	dateTo     string
	docketType string
	status     map[string]struct{}

	agencies *dimension[string]
	cfr      *dimension[int]
}

// New creates an empty filter state
func New(opts Options) *State {
	if opts.VisibleCap <= 0 {
		opts.VisibleCap = 5
	}
	if opts.Agencies == nil {
		opts.Agencies = directory.DefaultAgencies()
	}
	if opts.CfrPartCount <= 0 {
		opts.CfrPartCount = 200
	}
	if len(opts.DocketTypes) == 0 {
		opts.DocketTypes = domain.DefaultDocketTypes
	}
	if len(opts.Statuses) == 0 {
		opts.Statuses = domain.DefaultStatuses
	}

	return &State{
		opts:     opts,
		cfrParts: directory.CfrParts(opts.CfrPartCount),
		status:   make(map[string]struct{}),
		agencies: newDimension[string](opts.Policy),
		cfr:      newDimension[int](opts.Policy),
	}
}

// Options returns the options the state was created with
func (s *State) Options() Options {
	return s.opts
}

// SetQuery sets the free-text search term
func (s *State) SetQuery(text string) {
	s.query = text
}

// Query returns the free-text search term
func (s *State) Query() string {
	return s.query
}

// SetDocketType selects t, or clears the docket type when t is already selected
func (s *State) SetDocketType(t string) {
	if s.docketType == t {
		s.docketType = ""
		return
	}
	s.docketType = t
}

// DocketType returns the selected docket type, "" when none
func (s *State) DocketType() string {
	return s.docketType
}

// SetDateFrom sets the start year. The value is not validated.
func (s *State) SetDateFrom(year string) {
	s.dateFrom = year
}

// SetDateTo sets the end year. The value is not validated.
func (s *State) SetDateTo(year string) {
	s.dateTo = year
}

// SetDateRange sets both ends of the date range at once
func (s *State) SetDateRange(from, to string) {
	s.dateFrom = from
	s.dateTo = to
}

// DateRange returns the start and end year
func (s *State) DateRange() (string, string) {
	return s.dateFrom, s.dateTo
}

// ApplyPreset sets the date range of DatePresets[i]. Out of range indexes are ignored.
func (s *State) ApplyPreset(i int) {
	if i < 0 || i >= len(DatePresets) {
		return
	}
	s.SetDateRange(DatePresets[i].From, DatePresets[i].To)
}

// ToggleStatus adds or removes a status
func (s *State) ToggleStatus(value string) {
	if _, ok := s.status[value]; ok {
		delete(s.status, value)
		return
	}
	s.status[value] = struct{}{}
}

// HasStatus reports whether value is selected
func (s *State) HasStatus(value string) bool {
	_, ok := s.status[value]
	return ok
}

// ToggleAgency toggles an agency code under the configured policy
func (s *State) ToggleAgency(code string) {
	s.agencies.toggle(code)
}

// AgencySelected reports whether code is selected
func (s *State) AgencySelected(code string) bool {
	return s.agencies.isSelected(code)
}

// SelectedAgencies returns the selected codes, most recently toggled first
func (s *State) SelectedAgencies() []string {
	return s.agencies.selectedByRecency()
}

// AgencyOrder returns the agency recency order, most recent first
func (s *State) AgencyOrder() []string {
	return slices.Clone(s.agencies.order)
}

// SetAgencySearch sets the live text filter of the agency list
func (s *State) SetAgencySearch(text string) {
	s.agencies.search = text
}

// AgencySearch returns the live text filter of the agency list
func (s *State) AgencySearch() string {
	return s.agencies.search
}

// ToggleCfrPart toggles a CFR part under the configured policy
func (s *State) ToggleCfrPart(part int) {
	s.cfr.toggle(part)
}

// CfrPartSelected reports whether part is selected
func (s *State) CfrPartSelected(part int) bool {
	return s.cfr.isSelected(part)
}

// SelectedCfrParts returns the selected parts, most recently toggled first
func (s *State) SelectedCfrParts() []int {
	return s.cfr.selectedByRecency()
}

// CfrOrder returns the CFR part recency order, most recent first
func (s *State) CfrOrder() []int {
	return slices.Clone(s.cfr.order)
}

// SetCfrSearch sets the live text filter of the CFR part list
func (s *State) SetCfrSearch(text string) {
	s.cfr.search = text
}

// CfrSearch returns the live text filter of the CFR part list
func (s *State) CfrSearch() string {
	return s.cfr.search
}

// VisibleAgencies returns the agencies to display.
//
// With search text, every match is returned with recently toggled agencies
// first. Without it, the top agencies are returned in the same order, cut to
// max(VisibleCap, number selected) entries.
func (s *State) VisibleAgencies() []domain.Agency {
	searching := strings.TrimSpace(s.agencies.search) != ""
	matches := s.opts.Agencies.Filter(s.agencies.search)

	byCode := make(map[string]domain.Agency, len(matches))
	base := make([]string, 0, len(matches))
	for _, a := range matches {
		byCode[a.Code] = a
		base = append(base, a.Code)
	}
	if !searching {
		// selections made through search stay visible after the search is cleared
		for _, code := range s.agencies.selectedByRecency() {
			if _, ok := byCode[code]; !ok {
				byCode[code] = domain.Agency{Code: code, Name: s.opts.Agencies.Name(code)}
				base = append(base, code)
			}
		}
	}

	arranged := s.agencies.arrange(base)
	if !searching {
		arranged = s.agencies.window(arranged, s.opts.VisibleCap)
	}

	out := make([]domain.Agency, 0, len(arranged))
	for _, code := range arranged {
		out = append(out, byCode[code])
	}
	return out
}

// VisibleCfrParts returns the CFR parts to display, following the same rules
// as VisibleAgencies over the parts 1..CfrPartCount.
func (s *State) VisibleCfrParts() []int {
	searching := strings.TrimSpace(s.cfr.search) != ""

	base := s.cfrParts
	if searching {
		base = make([]int, 0)
		for _, p := range s.cfrParts {
			if directory.MatchCfrPart(p, s.cfr.search) {
				base = append(base, p)
			}
		}
	}

	arranged := s.cfr.arrange(base)
	if !searching {
		arranged = s.cfr.window(arranged, s.opts.VisibleCap)
	}
	return slices.Clone(arranged)
}

// VisibleChoices returns the visible keys of dim as strings
func (s *State) VisibleChoices(dim Dimension) []string {
	switch dim {
	case DimensionCfrPart:
		parts := s.VisibleCfrParts()
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strconv.Itoa(p))
		}
		return out
	default:
		agencies := s.VisibleAgencies()
		out := make([]string, 0, len(agencies))
		for _, a := range agencies {
			out = append(out, a.Code)
		}
		return out
	}
}

// ShowsDefaultWindow reports whether dim is showing the capped default list,
// which is when the "selecting moves it to the top" hint applies.
func (s *State) ShowsDefaultWindow(dim Dimension) bool {
	d := s.searchAndCount(dim)
	return strings.TrimSpace(d.search) == "" && d.count <= s.opts.VisibleCap
}

type searchCount struct {
	search string
	count  int
}

func (s *State) searchAndCount(dim Dimension) searchCount {
	if dim == DimensionCfrPart {
		return searchCount{s.cfr.search, s.cfr.count()}
	}
	return searchCount{s.agencies.search, s.agencies.count()}
}

// ActiveFilterCount counts the active advanced filters. It is recomputed
// from the current selections on every call.
func (s *State) ActiveFilterCount() int {
	n := 0
	if s.dateFrom != "" {
		n++
	}
	if s.dateTo != "" {
		n++
	}
	n += s.agencies.count()
	n += s.cfr.count()
	n += len(s.status)
	if s.opts.CountDocketType && s.docketType != "" {
		n++
	}
	return n
}

// Clear resets every selection, search text and recency order
func (s *State) Clear() {
	s.query = ""
	s.dateFrom = ""
	s.dateTo = ""
	s.docketType = ""
	clear(s.status)
	s.agencies.reset()
	s.cfr.reset()
}

// Snapshot copies the current selections
func (s *State) Snapshot() Snapshot {
	var status []string
	for _, v := range s.opts.Statuses {
		if s.HasStatus(v) {
			status = append(status, v)
		}
	}
	// statuses outside the configured list keep a stable order too
	var extra []string
	for v := range s.status {
		if !slices.Contains(s.opts.Statuses, v) {
			extra = append(extra, v)
		}
	}
	slices.Sort(extra)
	status = append(status, extra...)

	return Snapshot{
		Query:      s.query,
		DateFrom:   s.dateFrom,
		DateTo:     s.dateTo,
		DocketType: s.docketType,
		Status:     status,
		Agencies:   s.agencies.selectedByRecency(),
		CfrParts:   s.cfr.selectedByRecency(),
	}
}

// AdvancedPayload returns the echo of the advanced filters
func (s *State) AdvancedPayload() Payload {
	return s.Snapshot().Payload()
}
