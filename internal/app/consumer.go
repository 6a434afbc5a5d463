package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer provisions default quotas for every employee_created event.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	conns, err := connect(cfg, logger, false)
	if err != nil {
		return err
	}
	defer conns.Close()

	ledger := newLedger(cfg, conns.gormDB, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, ledger, logger)

	log.Info("consumer shutting down")
	return nil
}
