package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, ev entities.OrderEvent) error
}

type Consumer struct {
	logger   *slog.Logger
	reader   Reader
	dlq      Writer
	validate *validator.Validate
	handler  OrderEventHandler
}

func NewConsumer(logger *slog.Logger, reader Reader, dlq Writer, handler OrderEventHandler) *Consumer {
	return &Consumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: utils.NewValidator(),
		handler:  handler,
	}
}

// Consume handles messages until ctx is cancelled. Messages that cannot be
// handled go to the dead letter topic and are committed either way.
func (c *Consumer) Consume(ctx context.Context) {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			c.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := c.handle(ctx, m); err != nil {
			c.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := c.WriteToDLQ(ctx, m); err != nil {
				c.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			c.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	var ev contract.OrderEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := c.validate.Struct(ev); err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("invalid event data: %w", err)
	}

	if err := c.handler.HandleOrderEvent(ctx, contract.OrderEventJSONToEntity(ev)); err != nil {
		eventsFailed.Inc()
		return err
	}
	eventsProcessed.Inc()
	return nil
}

func (c *Consumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return c.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}
	return c.dlq.Close()
}
