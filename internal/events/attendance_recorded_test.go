package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"geo-attend/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRecordedEvent_OmitsMissingGeofenceData(t *testing.T) {
	raw, err := json.Marshal(events.AttendanceRecordedEvent{
		EventType:  events.AttendanceRecordedType,
		RecordID:   "rec-1",
		Type:       "OUT",
		OccurredAt: time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "office_name")
	assert.NotContains(t, fields, "distance_meters")
	assert.Equal(t, "2024-01-01T17:00:00Z", fields["occurred_at"])
}
