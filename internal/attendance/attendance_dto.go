package attendance

import "geo-attend/internal/geo"

type RecordResponse struct {
	ID          string       `json:"id"`
	Timestamp   string       `json:"timestamp"`
	Type        string       `json:"type"`
	Location    geo.Location `json:"location"`
	IsAuto      bool         `json:"isAuto"`
	Method      string       `json:"method"`
	Coordinates string       `json:"coordinates"`
}

type StatusResponse struct {
	Status          string          `json:"status"`
	IsCheckedIn     bool            `json:"isCheckedIn"`
	OfficeName      string          `json:"officeName"`
	Radius          float64         `json:"radius"`
	Geofence        string          `json:"geofence"`
	GeofenceLabel   string          `json:"geofenceLabel"`
	IsAtOffice      bool            `json:"isAtOffice"`
	Distance        *float64        `json:"distance"`
	DistanceText    string          `json:"distanceText"`
	CurrentLocation *geo.Location   `json:"currentLocation"`
	Locating        bool            `json:"locating"`
	LocationError   string          `json:"locationError,omitempty"`
	CanCheckIn      bool            `json:"canCheckIn"`
	CanCheckOut     bool            `json:"canCheckOut"`
	Hint            string          `json:"hint,omitempty"`
	LastRecord      *RecordResponse `json:"lastRecord,omitempty"`
}
