package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"geo-attend/internal/geo"
	"geo-attend/internal/state"

	"google.golang.org/genai"
)

const (
	lookupPrompt = `Find the specific address and GPS coordinates (latitude and longitude) for this office location: "%s". Please format the result clearly so I can extract the coordinates.`

	analysisPrompt      = "Analyze these office attendance logs and provide a short summary of consistency and average hours if possible: %s"
	analysisInstruction = "You are a professional HR analyst. Provide concise, helpful summaries."
	defaultMapsTitle    = "View on Maps"
)

type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type geminiClient struct {
	models        contentGenerator
	lookupModel   string
	analysisModel string
}

// NewGeminiClient builds a Client on the Gemini API. Office lookups use Maps
// grounding; analysis uses a plain generation with a system instruction.
func NewGeminiClient(ctx context.Context, apiKey, lookupModel, analysisModel string) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiClient(client.Models, lookupModel, analysisModel), nil
}

func newGeminiClient(models contentGenerator, lookupModel, analysisModel string) *geminiClient {
	return &geminiClient{models: models, lookupModel: lookupModel, analysisModel: analysisModel}
}

func (g *geminiClient) LookupOffice(ctx context.Context, query string, near *geo.Location) (LookupResult, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}
	if near != nil {
		config.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(near.Latitude),
					Longitude: genai.Ptr(near.Longitude),
				},
			},
		}
	}

	resp, err := g.models.GenerateContent(ctx, g.lookupModel, genai.Text(fmt.Sprintf(lookupPrompt, query)), config)
	if err != nil {
		return LookupResult{}, err
	}

	return LookupResult{Text: resp.Text(), GroundingURLs: mapsSources(resp)}, nil
}

func (g *geminiClient) AnalyzeAttendance(ctx context.Context, history []state.AttendanceRecord) (string, error) {
	if history == nil {
		history = []state.AttendanceRecord{}
	}
	logs, err := json.Marshal(history)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(analysisInstruction, genai.RoleUser),
	}
	resp, err := g.models.GenerateContent(ctx, g.analysisModel, genai.Text(fmt.Sprintf(analysisPrompt, logs)), config)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// mapsSources collects the Maps grounding chunks of the first candidate.
func mapsSources(resp *genai.GenerateContentResponse) []GroundingURL {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var urls []GroundingURL
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		title := chunk.Maps.Title
		if title == "" {
			title = defaultMapsTitle
		}
		urls = append(urls, GroundingURL{Title: title, URI: chunk.Maps.URI})
	}
	return urls
}
