package search

import (
	"time"

	"mirrsearch/internal/domain"
)

// Phase is the search lifecycle phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBuilding
	PhaseAwaiting
	PhaseResults
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// State holds search lifecycle state
type State struct {
	Phase    Phase
	Latest   uint64 // sequence number of the most recently issued request
	InFlight int    // issued requests whose outcome has not been applied yet
	Request  domain.QueryRequest
	Results  *domain.ResultSet // last successful result set, kept on failure
	Stale    bool              // Results predate the latest failed request
	Err      error             // failure of the latest request
}

// Ticket identifies one issued request
type Ticket struct {
	Seq      uint64
	Request  domain.QueryRequest
	IssuedAt time.Time
}

// Outcome is what came back for a ticket
type Outcome struct {
	Ticket       Ticket
	Results      []domain.Result
	TotalResults int
	Err          error
	Duration     time.Duration
}
