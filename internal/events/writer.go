package events

//go:generate mockgen -destination=../mocks/mock_event_writer.go -package=mocks github.com/debugg-er/zootube-api-sub000/internal/events Writer

import (
	"context"
	"encoding/json"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

const WriteTimeout = 5 * time.Second

type Envelope struct {
	Name       string    `json:"name"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Writer publishes domain events. Implementations must not block request handling for long.
type Writer interface {
	Write(ctx context.Context, name string, key []byte, payload any) error
	Close() error
}

// Producer is the part of *kafka.Writer the JSON writer needs.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaWriter struct {
	producer Producer
	now      func() time.Time
}

func NewKafkaWriter(bootstrapServer, topic string) *KafkaWriter {
	return NewKafkaWriterWithProducer(&kafka.Writer{
		Addr:         kafka.TCP(bootstrapServer),
		Topic:        topic,
		Balancer:     &kafka.ReferenceHash{},
		Compression:  compress.Gzip,
		Async:        true,
		WriteTimeout: WriteTimeout,
	})
}

func NewKafkaWriterWithProducer(p Producer) *KafkaWriter {
	return &KafkaWriter{producer: p, now: time.Now}
}

func (w *KafkaWriter) Write(ctx context.Context, name string, key []byte, payload any) error {
	value, err := json.Marshal(Envelope{Name: name, Payload: payload, OccurredAt: w.now().UTC()})
	if err != nil {
		return err
	}
	// Async writers always return nil here; delivery errors surface in the writer's logger.
	return w.producer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (w *KafkaWriter) Close() error {
	return w.producer.Close()
}

// NoopWriter drops every event. Used when no broker is configured.
type NoopWriter struct{}

func (NoopWriter) Write(context.Context, string, []byte, any) error { return nil }

func (NoopWriter) Close() error { return nil }
