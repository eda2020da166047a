// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock returns a deterministic offline client for local development. The
// plan payload is intentionally sparse so the normalizer's backfill path runs
// the same way it does against real model output.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlanJSON(_ context.Context, _, user string) (string, error) {
	return `{
  "duration_days": 120,
  "estimated_cost": 25000,
  "expected_yield": "25-30 quintals per acre",
  "estimated_profit": 32000,
  "fertilizer_recommendations": ["NPK 20:20:20", "Urea", "Compost"],
  "monthly_plans": [
    {
      "focus": "Establishment: seed treatment, sowing, and first irrigation",
      "day_plan": [
        {"day": 1, "title": "Seed treatment and soaking", "icon": "sprout"},
        {"day": 2, "title": "Field layout and bund repair", "icon": "tractor"}
      ]
    }
  ]
}`, nil
}

func (m *mockClient) ChatReply(_ context.Context, messages []Message) (string, error) {
	last := ""
	for _, msg := range messages {
		if msg.Role == "user" {
			last = msg.Content
		}
	}
	if strings.Contains(strings.ToLower(last), "water") {
		return "Irrigate in the early morning and check soil moisture at root depth before every watering.", nil
	}
	return "Monitor your crop daily and follow the day-wise tasks in your plan.", nil
}
