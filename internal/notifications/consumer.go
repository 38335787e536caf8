package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"eventsync/internal/shared/config"
	"eventsync/pkg/logger"
)

// Consumer reads booking notifications off Kafka and dispatches them.
// Delivery is mocked: messages are logged, not emailed.
type Consumer struct {
	group  sarama.ConsumerGroup
	topic  string
	logger *logger.Logger
}

// NewConsumer creates a consumer-group worker for booking notifications
func NewConsumer(cfg config.KafkaConfig, appLogger *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:  group,
		topic:  cfg.BookingsTopic,
		logger: appLogger,
	}, nil
}

// Start consumes until the context is cancelled
func (c *Consumer) Start(ctx context.Context) error {
	handler := &notificationHandler{logger: c.logger}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("consumer group error", slog.Any("error", err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close shuts down the consumer group
func (c *Consumer) Close() error {
	return c.group.Close()
}

type notificationHandler struct {
	logger *logger.Logger
}

func (h *notificationHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *notificationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *notificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var notification Notification
		if err := json.Unmarshal(message.Value, &notification); err != nil {
			h.logger.Error("failed to decode notification",
				slog.Any("error", err),
				slog.Int64("offset", message.Offset),
			)
			session.MarkMessage(message, "")
			continue
		}

		h.logger.Info("notification delivered",
			slog.String("type", string(notification.Type)),
			slog.String("recipient", notification.Recipient),
			slog.String("booking_id", notification.BookingID),
			slog.String("event_id", notification.EventID),
			slog.Int("num_tickets", notification.NumTickets),
		)
		session.MarkMessage(message, "")
	}
	return nil
}
