package kafka

import (
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// NewProducer initializes and returns a new Kafka writer (producer).
func NewProducer(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:  kafka.TCP(brokers...),
		Topic: topic,
		// Events are keyed by match id; hashing keeps each match's events
		// on one partition so consumers see them in order.
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne, // Acknowledge after leader has written.
		Async:        true,             // Asynchronous writes for higher throughput.
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Error("Kafka async write failed", "error", err)
			}
		},
	}
}
