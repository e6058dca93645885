package events

import "time"

const (
	AttendanceRecordedTopic = "geoattend.attendance.recorded.v1"
	AttendanceRecordedType  = "attendance.recorded"
)

type AttendanceRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	Type       string    `json:"type"`
	Timestamp  string    `json:"timestamp"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsAuto     bool      `json:"is_auto"`
	OfficeName string    `json:"office_name,omitempty"`
	Distance   *float64  `json:"distance_meters,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
