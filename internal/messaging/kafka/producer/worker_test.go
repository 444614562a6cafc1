package producer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-paie/internal/events"
	"go-paie/internal/messaging/kafka"
	outboxMock "go-paie/internal/messaging/kafka/mock"
	"go-paie/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("leader not available")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPending(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "e1", RequestID: "req-1", AggregateType: kafka.AggregatePayslip, AggregateID: "p1", EventType: events.PayslipGeneratedType, Topic: events.PayslipGeneratedTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e1").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		assert.Equal(t, []byte("p1"), writer.written[0].Key)
		assert.Contains(t, writer.written[0].Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "broken"}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "e1", AggregateID: "a", Topic: "broken", Payload: []byte(`{}`)},
			{ID: "e2", AggregateID: "b", Topic: events.PayslipBatchRequestedTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "e1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := outboxMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPending(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})
}

func TestDrain_RepeatsFullPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := outboxMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{}

	full := make([]kafka.OutboxEvent, 50)
	for i := range full {
		full[i] = kafka.OutboxEvent{ID: fmt.Sprintf("e%d", i), AggregateID: "p", Topic: events.PayslipGeneratedTopic, Payload: []byte(`{}`)}
	}

	gomock.InOrder(
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(full, nil),
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(full[:3], nil),
	)
	repo.EXPECT().MarkSent(gomock.Any(), gomock.Any()).Return(nil).Times(53)

	producer.Drain(context.Background(), repo, writer, zap.NewNop())

	assert.Len(t, writer.written, 53)
}
