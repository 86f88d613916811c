package domain

import (
	"encoding/json"
	"time"
)

// Agency is an entry of the agency directory
type Agency struct {
	Code string
	Name string
}

// Docket statuses offered by the status filter
const (
	StatusOpen    = "Open"
	StatusClosed  = "Closed"
	StatusPending = "Pending"
)

// DefaultStatuses is the fixed status choice set
var DefaultStatuses = []string{StatusOpen, StatusClosed, StatusPending}

// DefaultDocketTypes is the docket type choice set used when config names none
var DefaultDocketTypes = []string{"Rulemaking", "Non-Rulemaking"}

// QueryRequest is the request sent to the search endpoint.
// Every field is always sent; an empty string means "no filter".
type QueryRequest struct {
	Text       string `json:"text" schema:"str"`
	DocketType string `json:"docketType" schema:"docket_type"`
	Agency     string `json:"agency" schema:"agency"`
	CfrPart    string `json:"cfrPart" schema:"cfr_part"`
}

// Result is a single record returned by the backend. Its shape is not interpreted.
type Result = json.RawMessage

// ResultSet holds the results of one completed search
type ResultSet struct {
	Seq          uint64 // sequence number of the request that produced it
	Request      QueryRequest
	Results      []Result
	TotalResults int // from X-Total-Results, -1 when the backend did not send it
	ReceivedAt   time.Time
}

// Len returns the number of records in the set
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Results)
}
