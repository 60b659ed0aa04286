package matches

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Publisher emits match lifecycle events for downstream consumers (ranking,
// notifications). Kafka-backed in production.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, key string, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}
