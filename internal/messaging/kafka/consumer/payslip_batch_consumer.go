package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-paie/internal/events"
	"go-paie/internal/payslip"
	"go-paie/internal/shared/apperror"
	"go-paie/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayslipBatchRequested(
	ctx context.Context,
	reader MessageReader,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_batch")
	log.Info("payslip batch consumer started")

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		return handleBatchRequested(ctx, payslipService, log, msg.Value)
	})

	log.Info("payslip batch consumer stopped")
}

// handleBatchRequested targets one employee by id, one by email, or the
// whole active workforce when neither is set.
func handleBatchRequested(ctx context.Context, svc payslip.Service, log *zap.Logger, value []byte) error {
	var event events.PayslipBatchRequestedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return poison(fmt.Errorf("decode payslip batch event: %w", err))
	}
	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	log = log.With(
		zap.String("request_id", event.RequestID),
		zap.Int("month", event.Month),
		zap.Int("year", event.Year),
	)

	var err error
	switch {
	case event.EmployeeID != "":
		var ok bool
		ok, err = svc.GeneratePayslip(ctx, event.EmployeeID, event.Month, event.Year)
		if err == nil {
			log.Info("payslip request handled", zap.String("employee_id", event.EmployeeID), zap.Bool("generated", ok))
		}
	case event.Email != "":
		var ok bool
		ok, err = svc.GeneratePayslipsByEmail(ctx, event.Email, event.Month, event.Year)
		if err == nil {
			log.Info("payslip request handled", zap.String("email", event.Email), zap.Bool("generated", ok))
		}
	default:
		var summary payslip.BatchSummary
		summary, err = svc.GeneratePayslipsForAllEmployees(ctx, event.Month, event.Year)
		if err == nil {
			log.Info("payslip batch handled",
				zap.Int("total", summary.Total),
				zap.Int("succeeded", summary.Succeeded),
				zap.Int("failed", summary.Failed),
			)
		}
	}

	if apperror.IsClientError(err) {
		return poison(err)
	}
	return err
}
