package filters

import "mirrsearch/internal/directory"

// Policy decides how the agency and CFR part dimensions react to a toggle
type Policy int

const (
	// PolicyMulti keeps any number of selections and reorders by recency
	PolicyMulti Policy = iota
	// PolicySingle keeps at most one selection; a new one replaces the old
	PolicySingle
)

// ParsePolicy maps the config spelling to a Policy. Unknown values select PolicyMulti.
func ParsePolicy(s string) Policy {
	if s == "single" {
		return PolicySingle
	}
	return PolicyMulti
}

func (p Policy) String() string {
	if p == PolicySingle {
		return "single"
	}
	return "multi"
}

// Dimension names a multi-choice filter with a visible-choices window
type Dimension int

const (
	DimensionAgency Dimension = iota
	DimensionCfrPart
)

// Options configures a State
type Options struct {
	Policy          Policy
	VisibleCap      int // default window size when no search text is active
	Agencies        *directory.Agencies
	CfrPartCount    int
	DocketTypes     []string
	Statuses        []string
	CountDocketType bool // count a selected docket type as an active filter
}

// Snapshot is an immutable copy of the filter selections.
// Agencies and CfrParts hold the selected keys, most recently toggled first.
type Snapshot struct {
	Query      string
	DateFrom   string
	DateTo     string
	DocketType string
	Status     []string
	Agencies   []string
	CfrParts   []int
}

// Payload is the advanced filter echo shown above the results
type Payload struct {
	YearFrom   string   `json:"yearFrom"`
	YearTo     string   `json:"yearTo"`
	Agencies   []string `json:"agencies"`
	CfrParts   []int    `json:"cfrParts"`
	Status     []string `json:"status"`
	DocketType string   `json:"docketType"`
}

// Payload returns the advanced filter echo of the snapshot
func (s Snapshot) Payload() Payload {
	p := Payload{
		YearFrom:   s.DateFrom,
		YearTo:     s.DateTo,
		Agencies:   s.Agencies,
		CfrParts:   s.CfrParts,
		Status:     s.Status,
		DocketType: s.DocketType,
	}
	if p.Agencies == nil {
		p.Agencies = []string{}
	}
	if p.CfrParts == nil {
		p.CfrParts = []int{}
	}
	if p.Status == nil {
		p.Status = []string{}
	}
	return p
}

// DatePreset is a one-key date range
type DatePreset struct {
	Label string
	From  string
	To    string
}

// DatePresets are the date range chips offered above the year fields
var DatePresets = []DatePreset{
	{Label: "2021–2023", From: "2021", To: "2023"},
	{Label: "2024", From: "2024", To: "2024"},
	{Label: "All time"},
}
