package attendance

import (
	"context"
	"encoding/json"

	"geo-attend/internal/events"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=attendance_event_publisher.go -destination=mock/attendance_event_publisher_mock.go -package=mock
type EventPublisher interface {
	PublishAttendanceRecorded(ctx context.Context, event events.AttendanceRecordedEvent) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher drops every event. Used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishAttendanceRecorded(context.Context, events.AttendanceRecordedEvent) error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaEventPublisher(writer *kafka.Writer, topic string) EventPublisher {
	return newKafkaEventPublisher(writer, topic)
}

func newKafkaEventPublisher(writer messageWriter, topic string) *kafkaEventPublisher {
	if topic == "" {
		topic = events.AttendanceRecordedTopic
	}
	return &kafkaEventPublisher{writer: writer, topic: topic}
}

func (p *kafkaEventPublisher) PublishAttendanceRecorded(
	ctx context.Context,
	event events.AttendanceRecordedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.RecordID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "record_type", Value: []byte(event.Type)},
		},
	})
}
