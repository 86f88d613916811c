// Package search runs the search lifecycle: it turns filter snapshots into
// requests, executes them, and applies only the newest response.
package search

import (
	"context"
	"log"
	"time"

	"mirrsearch/internal/domain"
	"mirrsearch/internal/eventbus"
	"mirrsearch/internal/filters"
	"mirrsearch/internal/query"
	"mirrsearch/internal/searchclient"
)

// Service handles search functionality
type Service struct {
	state    *State
	bus      eventbus.EventBus
	searcher searchclient.Searcher
	now      func() time.Time
}

// NewService creates a new search service. bus may be nil.
func NewService(searcher searchclient.Searcher, bus eventbus.EventBus) *Service {
	return &Service{
		state:    &State{Phase: PhaseIdle},
		bus:      bus,
		searcher: searcher,
		now:      time.Now,
	}
}

// State returns a copy of the lifecycle state
func (s *Service) State() State {
	return *s.state
}

// Submit builds a request from snap and issues a new sequence number for it.
// Requests still in flight are not cancelled; their outcomes will be discarded.
func (s *Service) Submit(snap filters.Snapshot) Ticket {
	s.state.Phase = PhaseBuilding
	req := query.Build(snap)

	s.state.Latest++
	s.state.InFlight++
	s.state.Request = req
	s.state.Phase = PhaseAwaiting

	t := Ticket{Seq: s.state.Latest, Request: req, IssuedAt: s.now()}
	s.publish(eventbus.SearchIssuedEvent{Seq: t.Seq, Request: req})
	return t
}

// Execute runs the request of t. It does not touch the service state and may
// run on any goroutine.
func (s *Service) Execute(ctx context.Context, t Ticket) Outcome {
	resp, err := s.searcher.Search(ctx, t.Request)
	out := Outcome{Ticket: t, Err: err, Duration: s.now().Sub(t.IssuedAt)}
	if err == nil {
		out.Results = resp.Results
		out.TotalResults = resp.TotalResults
	}
	return out
}

// Apply records an outcome. It returns false when the outcome belongs to a
// superseded request and was discarded.
func (s *Service) Apply(out Outcome) bool {
	if s.state.InFlight > 0 {
		s.state.InFlight--
	}

	if out.Ticket.Seq != s.state.Latest {
		log.Printf("Discarding search #%d: superseded by #%d", out.Ticket.Seq, s.state.Latest)
		s.publish(eventbus.SearchDiscardedEvent{Seq: out.Ticket.Seq, Latest: s.state.Latest})
		return false
	}

	if out.Err != nil {
		log.Printf("Search #%d failed: %v", out.Ticket.Seq, out.Err)
		s.state.Phase = PhaseError
		s.state.Err = out.Err
		s.state.Stale = s.state.Results != nil
		s.publish(eventbus.SearchFailedEvent{Seq: out.Ticket.Seq, Err: out.Err})
		return true
	}

	s.state.Phase = PhaseResults
	s.state.Err = nil
	s.state.Stale = false
	s.state.Results = &domain.ResultSet{
		Seq:          out.Ticket.Seq,
		Request:      out.Ticket.Request,
		Results:      out.Results,
		TotalResults: out.TotalResults,
		ReceivedAt:   s.now(),
	}
	s.publish(eventbus.SearchCompletedEvent{
		Seq:      out.Ticket.Seq,
		Count:    len(out.Results),
		Duration: out.Duration,
	})
	return true
}

// Search submits, executes and applies one request synchronously
func (s *Service) Search(ctx context.Context, snap filters.Snapshot) (*domain.ResultSet, error) {
	t := s.Submit(snap)
	out := s.Execute(ctx, t)
	s.Apply(out)
	if out.Err != nil {
		return nil, out.Err
	}
	return s.state.Results, nil
}

// Busy reports whether the latest request is still awaiting its response
func (s *Service) Busy() bool {
	return s.state.Phase == PhaseAwaiting
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
