package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/events"
	leavequotaerrors "go-hrms/internal/leavequota/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// QuotaProvisioner creates the default balances of a new hire.
type QuotaProvisioner interface {
	Provision(ctx context.Context, empNo int64, year int) (int, error)
}

var errSkip = errors.New("skip message")

// Retry delays. A message that fails with a retryable error is retried in
// place so that no later offset is committed past it.
var (
	fetchRetryDelay   = time.Second
	initialRetryDelay = 500 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

// ConsumeEmployeeLifecycle provisions default leave quotas for every
// employee_created event. Messages are committed only after provisioning
// succeeds, or when they can never succeed.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	provisioner QuotaProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			if !sleep(ctx, fetchRetryDelay) {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			continue
		}

		if !provisionWithRetry(ctx, provisioner, msg, log) {
			log.Info("employee lifecycle consumer stopped before commit", zap.Int64("offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// provisionWithRetry returns false only when ctx ended before msg was
// handled, in which case msg must stay uncommitted.
func provisionWithRetry(ctx context.Context, provisioner QuotaProvisioner, msg kafkago.Message, log *zap.Logger) bool {
	delay := initialRetryDelay
	for attempt := 1; ; attempt++ {
		err := handleEmployeeCreated(ctx, provisioner, msg, log)
		if err == nil || errors.Is(err, errSkip) {
			return true
		}
		log.Error("provision leave quota failed",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		if !sleep(ctx, delay) {
			return false
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func handleEmployeeCreated(ctx context.Context, provisioner QuotaProvisioner, msg kafkago.Message, log *zap.Logger) error {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Warn("decode employee lifecycle event failed", zap.Error(err))
		return errSkip
	}
	if event.EventType != events.EventEmployeeCreated {
		log.Debug("ignoring employee lifecycle event", zap.String("event_type", event.EventType))
		return errSkip
	}
	if event.EmployeeID <= 0 {
		log.Warn("employee_created event without employee id", zap.String("request_id", event.RequestID))
		return errSkip
	}

	year := event.ProvisionYear()
	created, err := provisioner.Provision(ctx, event.EmployeeID, year)
	if err != nil {
		if errors.Is(err, leavequotaerrors.ErrInvalidCategory) {
			return fmt.Errorf("%w: %v", errSkip, err)
		}
		return err
	}

	log.Info("leave quota provisioned from employee_created event",
		zap.String("request_id", event.RequestID),
		zap.Int64("employee_id", event.EmployeeID),
		zap.Int("year", year),
		zap.Int("created", created),
	)
	return nil
}
