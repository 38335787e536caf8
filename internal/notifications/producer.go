package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"eventsync/internal/shared/config"
)

// Producer publishes booking notifications
type Producer interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

// KafkaProducer publishes notifications to Kafka
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a Kafka producer for booking notifications
func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one user's notifications ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		topic:    cfg.BookingsTopic,
	}, nil
}

// Publish sends a single notification to Kafka
func (p *KafkaProducer) Publish(ctx context.Context, notification *Notification) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: notification.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(notification.Type)},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer
func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}

// NoopProducer drops notifications; used when Kafka is disabled
type NoopProducer struct{}

func (NoopProducer) Publish(ctx context.Context, notification *Notification) error { return nil }
func (NoopProducer) Close() error                                                  { return nil }
