package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"courierpay/internal/domain/model"
)

type sinkStub struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (s *sinkStub) Name() string { return "stub" }

func (s *sinkStub) Deliver(_ context.Context, evt model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, evt)
	return nil
}

func (s *sinkStub) delivered() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

func TestNewBusDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	bus := NewBus(0, logger)
	if cap(bus.buf) != 1 {
		t.Fatalf("expected buffer size default to 1, got %d", cap(bus.buf))
	}
}

func TestBusDeliversInOrder(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sink := &sinkStub{}
	bus := NewBus(8, logger, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	bus.Publish(model.Event{ID: "a", Kind: model.EventOrderPlaced, OrderID: 0})
	bus.Publish(model.Event{ID: "b", Kind: model.EventOrderDelivered, OrderID: 0})

	deadline := time.After(500 * time.Millisecond)
	for len(sink.delivered()) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for event delivery")
		case <-time.After(10 * time.Millisecond):
		}
	}

	bus.Stop()
	got := sink.delivered()
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("events delivered out of order: %+v", got)
	}
}

func TestBusStopDrainsBuffer(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sink := &sinkStub{}
	bus := NewBus(8, logger, sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	for i := 0; i < 5; i++ {
		bus.Publish(model.Event{Kind: model.EventOrderPlaced, OrderID: int64(i)})
	}
	bus.Stop()

	if got := len(sink.delivered()); got != 5 {
		t.Fatalf("expected 5 events after drain, got %d", got)
	}
}

func TestBusPublishDropsWhenFull(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	bus := NewBus(1, logger, &sinkStub{})

	// No consumer running: the second publish must not block.
	done := make(chan struct{})
	go func() {
		bus.Publish(model.Event{ID: "first"})
		bus.Publish(model.Event{ID: "second"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("publish blocked on full buffer")
	}
}

func TestBusKeepsDeliveringAfterSinkError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	failing := &sinkStub{err: errors.New("broker down")}
	healthy := &sinkStub{}
	bus := NewBus(8, logger, failing, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	bus.Publish(model.Event{ID: "a"})
	bus.Stop()

	if got := len(healthy.delivered()); got != 1 {
		t.Fatalf("healthy sink must still receive events, got %d", got)
	}
}
