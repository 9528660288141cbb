package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// RecordProducer is the subset of *kgo.Client the sink needs.
type RecordProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// KafkaSink publishes events as JSON records keyed by subject, so all
// events about one record land on one partition in order.
type KafkaSink struct {
	producer RecordProducer
	topic    string
}

func NewKafkaSink(producer RecordProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (s *KafkaSink) Publish(ctx context.Context, batch []Event) error {
	records := make([]*kgo.Record, 0, len(batch))
	for _, e := range batch {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", e.Sequence, err)
		}
		key := e.Subject
		if key == "" {
			key = string(e.Name)
		}
		records = append(records, &kgo.Record{
			Topic: s.topic,
			Key:   []byte(key),
			Value: value,
			Headers: []kgo.RecordHeader{
				{Key: "event", Value: []byte(e.Name)},
				{Key: "category", Value: []byte(e.Category)},
			},
		})
	}
	if err := s.producer.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce events: %w", err)
	}
	return nil
}
