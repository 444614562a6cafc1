package consumer

import (
	"context"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// poisonError marks a message that can never succeed. It is committed so the
// partition keeps moving.
type poisonError struct {
	err error
}

func (e poisonError) Error() string { return e.err.Error() }
func (e poisonError) Unwrap() error { return e.err }

func poison(err error) error {
	return poisonError{err: err}
}

func isPoison(err error) bool {
	var p poisonError
	return errors.As(err, &p)
}

// retryBackoff bounds the wait between attempts on a transient failure.
var retryBackoff = struct{ initial, max time.Duration }{
	initial: time.Second,
	max:     30 * time.Second,
}

// run fetches until ctx is done. A transient handler error retries the same
// message with backoff, so no later offset is committed past it. On shutdown
// the message stays uncommitted and is fetched again on the next start.
func run(
	ctx context.Context,
	reader MessageReader,
	log *zap.Logger,
	handle func(ctx context.Context, msg kafkago.Message) error,
) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handleWithRetry(ctx, log, msg, handle); err != nil {
			if !isPoison(err) {
				return
			}
			log.Warn("dropping message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

// handleWithRetry returns nil, a poison error, or ctx's error.
func handleWithRetry(
	ctx context.Context,
	log *zap.Logger,
	msg kafkago.Message,
	handle func(ctx context.Context, msg kafkago.Message) error,
) error {
	delay := retryBackoff.initial
	for attempt := 1; ; attempt++ {
		err := handle(ctx, msg)
		if err == nil || isPoison(err) {
			return err
		}

		log.Error("handle message failed, retrying",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, retryBackoff.max)
	}
}
