package location

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type DenyRequest struct {
	// denied (default) or unsupported
	Reason string `json:"reason" binding:"omitempty,oneof=denied unsupported"`
}
