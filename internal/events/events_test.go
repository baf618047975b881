package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/techmarket/internal/contract"
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/events"
	mocks "github.com/SergeyBogomolovv/techmarket/internal/events/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPublisher_Publish(t *testing.T) {
	writer := mocks.NewMockWriter(t)
	p := events.NewPublisher(logger, writer)

	ev := entities.OrderEvent{
		Type:       entities.OrderStatusChanged,
		OrderID:    42,
		BuyerID:    1,
		SellerIDs:  []int64{2, 3},
		Status:     entities.StatusShipped,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "42", string(msgs[0].Key))

			var got contract.OrderEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, ev, contract.OrderEventJSONToEntity(got))
			return nil
		}).Once()

	require.NoError(t, p.Publish(context.Background(), ev))
}

func TestPublisher_PublishFailure(t *testing.T) {
	writer := mocks.NewMockWriter(t)
	p := events.NewPublisher(logger, writer)

	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.OrderCreated, OrderID: 1})
	assert.Error(t, err)
}

func message(t *testing.T, offset int64, ev contract.OrderEvent) kafka.Message {
	value, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Topic: "order-events", Offset: offset, Value: value}
}

func TestConsumer_Consume(t *testing.T) {
	reader := mocks.NewMockReader(t)
	dlq := mocks.NewMockWriter(t)
	handler := mocks.NewMockOrderEventHandler(t)
	c := events.NewConsumer(logger, reader, dlq, handler)

	valid := message(t, 1, contract.OrderEvent{Type: "order.created", OrderID: 7, BuyerID: 1, SellerIDs: []int64{2}, Status: "PENDING"})
	failing := message(t, 2, contract.OrderEvent{Type: "order.status_changed", OrderID: 8, BuyerID: 1, Status: "SHIPPED"})
	invalid := message(t, 3, contract.OrderEvent{Type: "order.deleted", OrderID: 9, BuyerID: 1, Status: "PENDING"})
	garbage := kafka.Message{Topic: "order-events", Offset: 4, Value: []byte("{")}

	reader.EXPECT().FetchMessage(mock.Anything).Return(valid, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(failing, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(invalid, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(garbage, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, context.Canceled).Once()

	handler.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
		return ev.OrderID == 7 && ev.Type == entities.OrderCreated
	})).Return(nil).Once()
	handler.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
		return ev.OrderID == 8
	})).Return(errors.New("marketplace down")).Once()

	var deadLetters []int64
	dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, m := range msgs {
				assert.Equal(t, "order-events-dlq", m.Topic)
				var ev contract.OrderEvent
				if json.Unmarshal(m.Value, &ev) == nil {
					deadLetters = append(deadLetters, ev.OrderID)
				} else {
					deadLetters = append(deadLetters, -1)
				}
			}
			return nil
		}).Times(3)

	var committed []int64
	reader.EXPECT().CommitMessages(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, m := range msgs {
				committed = append(committed, m.Offset)
			}
			return nil
		}).Times(4)

	c.Consume(context.Background())

	assert.Equal(t, []int64{8, 9, -1}, deadLetters)
	assert.Equal(t, []int64{1, 2, 3, 4}, committed)
}

func TestConsumer_DLQFailureSkipsCommit(t *testing.T) {
	reader := mocks.NewMockReader(t)
	dlq := mocks.NewMockWriter(t)
	handler := mocks.NewMockOrderEventHandler(t)
	c := events.NewConsumer(logger, reader, dlq, handler)

	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{Topic: "order-events", Value: []byte("nope")}, nil).Once()
	reader.EXPECT().FetchMessage(mock.Anything).Return(kafka.Message{}, io.EOF).Once()
	dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	c.Consume(context.Background())
}

func TestConsumer_Close(t *testing.T) {
	reader := mocks.NewMockReader(t)
	dlq := mocks.NewMockWriter(t)
	c := events.NewConsumer(logger, reader, dlq, mocks.NewMockOrderEventHandler(t))

	reader.EXPECT().Close().Return(nil).Once()
	dlq.EXPECT().Close().Return(nil).Once()

	assert.NoError(t, c.Close())
}
