package eventbus

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan SearchCompletedEvent, 1)
	b.Subscribe(EventSearchCompleted, func(e DomainEvent) {
		got <- e.(SearchCompletedEvent)
	})

	b.Publish(SearchCompletedEvent{Seq: 3, Count: 7})

	select {
	case ev := <-got:
		assert.Equal(t, uint64(3), ev.Seq)
		assert.Equal(t, 7, ev.Count)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var failed atomic.Int32
	done := make(chan struct{}, 1)
	b.Subscribe(EventSearchFailed, func(DomainEvent) { failed.Add(1) })
	b.Subscribe(EventFiltersCleared, func(DomainEvent) { done <- struct{}{} })

	b.Publish(FiltersClearedEvent{})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	assert.Equal(t, int32(0), failed.Load())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { calls.Add(1) })
	done := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { done <- struct{}{} })

	unsubscribe()
	b.Publish(ErrorEvent{Message: "boom", Err: errors.New("boom")})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	// give a stray handler goroutine a chance to run
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())
}

func TestPanickingHandlerDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	done := make(chan struct{}, 1)
	b.Subscribe(EventSearchIssued, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventSearchIssued, func(DomainEvent) { done <- struct{}{} })

	b.Publish(SearchIssuedEvent{Seq: 1})
	b.Publish(SearchIssuedEvent{Seq: 2})

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, func() { b.Publish(FiltersClearedEvent{}) })
}
