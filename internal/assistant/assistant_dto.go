package assistant

type OfficeLookupRequest struct {
	Query string `json:"query" binding:"required,notblank"`
	// Optional position hint; the tracker's last fix is used when absent.
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type LookupResponse struct {
	Text          string         `json:"text"`
	GroundingURLs []GroundingURL `json:"groundingUrls,omitempty"`
	Cached        bool           `json:"cached"`
	Fallback      bool           `json:"fallback"`
}

type AnalysisResponse struct {
	Text     string `json:"text"`
	Records  int    `json:"records"`
	Fallback bool   `json:"fallback"`
}
