package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// KafkaPublisher implements Publisher on a Kafka topic. Messages are keyed
// by product id so all changes for one product land on the same partition
// in observation order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the given brokers and
// topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishChanges writes one message per change event in a single batch.
func (p *KafkaPublisher) PublishChanges(ctx context.Context, events []domain.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for i := range events {
		value, err := json.Marshal(&events[i])
		if err != nil {
			return fmt.Errorf("marshaling change event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(events[i].ProductID),
			Value: value,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("writing change events: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
