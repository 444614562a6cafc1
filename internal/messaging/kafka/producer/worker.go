package producer

import (
	"context"
	"time"

	"go-paie/internal/messaging/kafka"

	"go.uber.org/zap"
)

// pageSize rows are published per ListPending call. A full page is drained
// again right away so a month-end batch does not wait one tick per page.
const pageSize = 50

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			drain(ctx, repo, writer, log)
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for ctx.Err() == nil {
		sent, err := ProcessPending(ctx, repo, writer, log)
		if err != nil {
			log.Error("list pending outbox events", zap.Error(err))
			return
		}
		if sent < pageSize {
			return
		}
	}
}

// ProcessPending publishes one page of due outbox rows and returns how many
// were marked sent. A publish failure marks the row failed and moves on.
func ProcessPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	due, err := repo.ListPending(ctx, pageSize)
	if err != nil || len(due) == 0 {
		return 0, err
	}

	sent := 0
	for _, event := range due {
		log := logger.With(
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("aggregate_id", event.AggregateID),
		)

		if err := publishEvent(ctx, writer, event); err != nil {
			attempt := event.RetryCount + 1
			if attempt >= kafka.MaxOutboxAttempts {
				log.Error("outbox event dead after last attempt", zap.Int("attempt", attempt), zap.Error(err))
			} else {
				log.Warn("publish outbox event", zap.Int("attempt", attempt), zap.Error(err))
			}
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				log.Error("mark outbox event failed", zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// published but still pending: the consumer side sees a duplicate
			log.Error("mark outbox event sent", zap.Error(err))
			continue
		}
		sent++
	}

	logger.Info("outbox page published", zap.Int("due", len(due)), zap.Int("sent", sent))
	return sent, nil
}
