package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"courierpay/internal/config"
)

// Module provides the event bus and its sinks.
var Module = fx.Options(
	fx.Provide(newBus),
)

type busParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newBus(p busParams) (*Bus, error) {
	sinks := []Sink{NewLogSink(p.Logger)}

	if len(p.Config.KafkaBrokers) > 0 {
		relay, err := NewKafkaRelay(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, relay)
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return relay.Close()
			},
		})
	}

	return NewBus(p.Config.EventBufferSize, p.Logger, sinks...), nil
}
