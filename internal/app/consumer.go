package app

import (
	"context"
	"errors"

	"geo-attend/internal/config"
	"geo-attend/internal/messaging/kafka/consumer"
	"geo-attend/internal/shared/audit"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const journalGroupID = "geo-attend-attendance-journal"

var ErrKafkaNotConfigured = errors.New("KAFKA_BROKER is required to run the consumer")

// RunConsumer journals AttendanceRecorded events from cfg.AttendanceTopic
// into auditor until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, auditor audit.Logger) error {
	if cfg.KafkaBroker == "" {
		return ErrKafkaNotConfigured
	}

	logger := zap.L().Named("app.consumer")
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.KafkaBroker},
		Topic:       cfg.AttendanceTopic,
		GroupID:     journalGroupID,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn("close kafka reader", zap.Error(err))
		}
	}()

	logger.Info("attendance journal started",
		zap.String("topic", cfg.AttendanceTopic),
		zap.String("group_id", journalGroupID),
	)
	consumer.ConsumeAttendanceRecorded(ctx, reader, auditor, logger)
	logger.Info("attendance journal stopped")
	return nil
}
