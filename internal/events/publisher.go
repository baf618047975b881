package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/segmentio/kafka-go"
)

type Publisher struct {
	logger *slog.Logger
	writer Writer
}

func NewPublisher(logger *slog.Logger, writer Writer) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("service", "publisher")),
		writer: writer,
	}
}

// Publish writes the event keyed by order id, so events of one order stay in order.
func (p *Publisher) Publish(ctx context.Context, ev entities.OrderEvent) error {
	value, err := json.Marshal(contract.OrderEventEntityToJSON(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: value,
	})
	if err != nil {
		eventsPublished.WithLabelValues(string(ev.Type), "error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues(string(ev.Type), "ok").Inc()
	p.logger.Debug("event published", slog.String("type", string(ev.Type)), slog.Int64("order_id", ev.OrderID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
