package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"courierpay/internal/domain/model"
)

// KafkaRelay forwards ledger events to a Kafka topic.
type KafkaRelay struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaRelay connects a synchronous producer to the given brokers.
func NewKafkaRelay(brokers []string, topic string, logger *slog.Logger) (*KafkaRelay, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second
	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaRelay{producer: producer, topic: topic, logger: logger}, nil
}

// Name identifies the sink in delivery logs.
func (r *KafkaRelay) Name() string { return "kafka" }

// Deliver publishes the event as JSON keyed by event id.
func (r *KafkaRelay) Deliver(ctx context.Context, evt model.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: r.topic,
		Key:   sarama.StringEncoder(evt.ID),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := r.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	r.logger.Debug("event relayed",
		slog.String("topic", r.topic),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

// Close releases the underlying producer.
func (r *KafkaRelay) Close() error {
	return r.producer.Close()
}

// LogSink writes every event to the structured log. It is always attached
// so event flow stays observable when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink constructs the logging sink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, evt model.Event) error {
	s.logger.Info("ledger event",
		slog.String("id", evt.ID),
		slog.String("kind", string(evt.Kind)),
		slog.Int64("order", evt.OrderID),
		slog.Int64("buyer", evt.BuyerID),
		slog.Int64("driver", evt.DriverID),
		slog.Int64("tip", evt.Tip),
		slog.String("via", string(evt.Via)),
	)
	return nil
}
