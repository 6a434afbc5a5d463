package producer

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	errFor   map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.errFor[string(m.Key)]; err != nil {
			return err
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func headerValue(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{{
			ID:            "evt-1",
			RequestID:     "rid-1",
			AggregateType: "leave_request",
			AggregateID:   "42",
			EventType:     events.EventLeaveDecided,
			Topic:         events.LeaveLifecycleTopic,
			Payload:       []byte(`{"leave_id":42}`),
			Status:        kafka.OutboxStatusPending,
		}}, nil)
		repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, logger, 50)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		if assert.Len(t, writer.messages, 1) {
			msg := writer.messages[0]
			assert.Equal(t, events.LeaveLifecycleTopic, msg.Topic)
			assert.Equal(t, "42", string(msg.Key))
			assert.Equal(t, events.EventLeaveDecided, headerValue(msg, "event_type"))
			assert.Equal(t, "rid-1", headerValue(msg, "request_id"))
		}
	})

	t.Run("failed publish is scheduled for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{errFor: map[string]error{"7": errors.New("broker unavailable")}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "evt-7", AggregateID: "7", Topic: events.LeaveLifecycleTopic, Payload: []byte(`{}`)},
			{ID: "evt-8", AggregateID: "8", Topic: events.LeaveLifecycleTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "evt-7", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "evt-8").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, logger, 50)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &fakeWriter{}, logger, 50)
		assert.Error(t, err)
	})
}
