package events

import (
	"context"
	"log/slog"
	"sync"

	"courierpay/internal/domain/model"
)

// Sink receives ledger events in publication order.
type Sink interface {
	Deliver(ctx context.Context, evt model.Event) error
	Name() string
}

// Bus decouples event producers from sinks through a buffered channel.
// Publish never blocks the caller: when the buffer is full the event is
// dropped with a warning. Sinks are invoked sequentially per event.
type Bus struct {
	sinks  []Sink
	logger *slog.Logger

	buf    chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewBus constructs an event bus with the given buffer size.
func NewBus(bufferSize int, logger *slog.Logger, sinks ...Sink) *Bus {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Bus{
		sinks:  sinks,
		logger: logger,
		buf:    make(chan model.Event, bufferSize),
	}
}

// Publish enqueues an event for delivery.
func (b *Bus) Publish(evt model.Event) {
	select {
	case b.buf <- evt:
	default:
		b.logger.Warn("event buffer full, dropping event",
			slog.String("kind", string(evt.Kind)),
			slog.Int64("order", evt.OrderID),
		)
	}
}

// Start launches background delivery.
func (b *Bus) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	b.wg.Add(1)
	go b.run(runCtx)
}

// Stop drains already-buffered events and waits for delivery to finish.
func (b *Bus) Stop() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bus) run(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			b.drain()
			return
		case evt := <-b.buf:
			b.deliver(ctx, evt)
		}
	}
}

func (b *Bus) drain() {
	for {
		select {
		case evt := <-b.buf:
			b.deliver(context.Background(), evt)
		default:
			return
		}
	}
}

func (b *Bus) deliver(ctx context.Context, evt model.Event) {
	for _, sink := range b.sinks {
		if err := sink.Deliver(ctx, evt); err != nil {
			b.logger.Error("event delivery failed",
				slog.String("sink", sink.Name()),
				slog.String("kind", string(evt.Kind)),
				slog.Int64("order", evt.OrderID),
				slog.String("error", err.Error()),
			)
		}
	}
}
