package office

import "geo-attend/internal/geo"

// SaveOfficeRequest mirrors the office setup form. Query is the free text
// used for the assistant lookup and becomes the address when none is given.
type SaveOfficeRequest struct {
	Name      string   `json:"name" binding:"required,notblank"`
	Address   string   `json:"address"`
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Radius    float64  `json:"radius" binding:"omitempty,gt=0"`
}

type OfficeResponse struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Location    geo.Location `json:"location"`
	Radius      float64      `json:"radius"`
	Coordinates string       `json:"coordinates"`
}
