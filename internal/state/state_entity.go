package state

import (
	"time"

	"geo-attend/internal/geo"
)

// StorageKey is the fixed key the browser app used for its state blob.
const StorageKey = "geo_attend_v1_storage"

// TimestampLayout matches JavaScript's Date.toISOString output.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type RecordType string

const (
	RecordIn  RecordType = "IN"
	RecordOut RecordType = "OUT"
)

type OfficeConfig struct {
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Location geo.Location `json:"location"`
	Radius   float64      `json:"radius"` // meters
}

// AttendanceRecord is immutable once appended to the history.
type AttendanceRecord struct {
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      RecordType   `json:"type"`
	Location  geo.Location `json:"location"`
	IsAuto    bool         `json:"isAuto"`
}

// Time parses Timestamp. The zero time is returned for unparseable values.
func (r AttendanceRecord) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UserState is the whole persisted document. History is newest first.
type UserState struct {
	IsConfigured bool               `json:"isConfigured"`
	Office       *OfficeConfig      `json:"office"`
	History      []AttendanceRecord `json:"history"`
}

func DefaultState() UserState {
	return UserState{
		IsConfigured: false,
		Office:       nil,
		History:      []AttendanceRecord{},
	}
}

// LastRecord returns the newest record, if any.
func (s UserState) LastRecord() (AttendanceRecord, bool) {
	if len(s.History) == 0 {
		return AttendanceRecord{}, false
	}
	return s.History[0], true
}

// normalized restores the isConfigured/office invariant and a non-nil
// history for documents written by older or foreign clients.
func (s UserState) normalized() UserState {
	s.IsConfigured = s.Office != nil
	if s.History == nil {
		s.History = []AttendanceRecord{}
	}
	return s
}
