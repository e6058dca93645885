package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"geo-attend/internal/events"
	"geo-attend/internal/shared/audit"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeAttendanceRecorded journals every attendance.recorded event into the
// audit log. Undecodable messages are committed and skipped. It returns when
// ctx is cancelled or the reader is closed.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	auditor audit.Logger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		meta := map[string]any{
			"record_id": event.RecordID,
			"type":      event.Type,
			"timestamp": event.Timestamp,
			"latitude":  event.Latitude,
			"longitude": event.Longitude,
			"is_auto":   event.IsAuto,
		}
		if event.OfficeName != "" {
			meta["office"] = event.OfficeName
		}
		if event.Distance != nil {
			meta["distance_meters"] = *event.Distance
		}

		auditor.Log(ctx, audit.Entry{
			Action:  "ATTENDANCE_" + event.Type,
			Message: "Attendance recorded",
			Meta:    meta,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}

		log.Debug("attendance event journaled", zap.String("record_id", event.RecordID))
	}
}
