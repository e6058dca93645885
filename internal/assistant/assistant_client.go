package assistant

import (
	"context"
	"errors"

	"geo-attend/internal/geo"
	"geo-attend/internal/state"
)

// ErrDisabled is returned by the client used when no API key is configured.
var ErrDisabled = errors.New("assistant: no api key configured")

type GroundingURL struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type LookupResult struct {
	Text          string         `json:"text"`
	GroundingURLs []GroundingURL `json:"groundingUrls,omitempty"`
}

// Client is the text model behind the assistant. Implementations return the
// raw answer; fallbacks for empty answers and failures live in Service.
//
//go:generate mockgen -source=assistant_client.go -destination=mock/assistant_client_mock.go -package=mock
type Client interface {
	LookupOffice(ctx context.Context, query string, near *geo.Location) (LookupResult, error)
	AnalyzeAttendance(ctx context.Context, history []state.AttendanceRecord) (string, error)
}

type disabledClient struct{}

func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) LookupOffice(context.Context, string, *geo.Location) (LookupResult, error) {
	return LookupResult{}, ErrDisabled
}

func (disabledClient) AnalyzeAttendance(context.Context, []state.AttendanceRecord) (string, error) {
	return "", ErrDisabled
}
