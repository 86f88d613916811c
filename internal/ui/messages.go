package ui

import (
	"time"

	"mirrsearch/internal/search"
)

// searchResultMsg carries the outcome of one issued search
type searchResultMsg struct {
	outcome search.Outcome
}

// tickMsg is sent on a timer while a search is in flight
type tickMsg time.Time

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}
