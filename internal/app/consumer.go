package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-paie/internal/config"
	"go-paie/internal/events"
	"go-paie/internal/messaging/kafka/consumer"
	"go-paie/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const batchConsumerGroup = "go-paie-payslip-batch"

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	infra, err := connect(cfg, true)
	if err != nil {
		return err
	}
	defer infra.Close()

	payslipService := newPayslipService(cfg, infra, zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        connection.SplitBrokers(cfg.KafkaBroker),
		Topic:          events.PayslipBatchRequestedTopic,
		GroupID:        batchConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipBatchRequested(ctx, reader, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
