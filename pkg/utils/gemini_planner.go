package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// PlannerInput is everything the external planning model needs to lay out a
// day-by-day schedule. OrderedPlaces is already route-optimized; the planner
// must keep that visiting order within each day.
type PlannerInput struct {
	Destination   string
	Days          int
	BudgetLimit   int
	OrderedPlaces []string
	TransitNotes  []string
}

type PlannerClientInterface interface {
	GenerateDayPlans(ctx context.Context, input PlannerInput) (string, error)
}

// GeminiPlannerClient implements PlannerClientInterface using Google's Gemini models
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

// NewGeminiPlannerClient creates a new Gemini client
func NewGeminiPlannerClient(ctx context.Context, apiKey, model string) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlannerClient) GenerateDayPlans(ctx context.Context, input PlannerInput) (string, error) {
	if input.Days < 1 || input.Days > 30 {
		return "", fmt.Errorf("bad day count %d", input.Days)
	}
	if len(input.OrderedPlaces) == 0 {
		return "", fmt.Errorf("no places")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only so no brace-matching cleanup is needed downstream:
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.2)

	schema := `
[
  {
    "day": 1,
    "activities": [
      {"time":"10:00:00","activity":"Visit Baga Beach","notes":"High priority"},
      {"time":"13:00:00","activity":"Lunch nearby","notes":"Popular spot"}
    ]
  }
]`

	var placeBuf strings.Builder
	for i, name := range input.OrderedPlaces {
		fmt.Fprintf(&placeBuf, "%d. %s\n", i+1, name)
	}
	var transitBuf strings.Builder
	for _, note := range input.TransitNotes {
		fmt.Fprintf(&transitBuf, "- %s\n", note)
	}

	prompt := fmt.Sprintf(`
You are an expert travel architect scheduling a %d-day trip to %s. Return **JSON only** that exactly matches the schema below.
The places are already sorted into a geographically efficient visiting order. Keep that order. Add lunch/dinner suggestions.
Daily budget: %d INR.

Schema (example, match keys exactly):
%s

Places in visiting order:
%s

Travel legs between consecutive places (use these in notes where helpful):
%s

Hard constraints:
- Exactly %d days in the array, day = 1..%d with no gaps.
- The "time" field MUST be 24-hour like "09:00:00" or "14:30:00". Never words like "Morning" or "Flexible".

Return JSON only. No comments, no markdown.
`, input.Days, input.Destination, input.BudgetLimit, schema, placeBuf.String(), transitBuf.String(), input.Days, input.Days)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}
	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	// Because ResponseMIMEType="application/json", this should already be clean JSON.
	if !json.Valid([]byte(content)) {
		content = stripCodeFences(content)
	}
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}
	return content, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
