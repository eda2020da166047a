// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no generation backend credential is set.
// Plan generation surfaces it to the caller; chat callers fall back to the
// rule-based reply instead.
var ErrNotConfigured = errors.New("text generation not configured: set HF_TOKEN")

type Message struct {
	Role    string `json:"role"` // system|user|assistant
	Content string `json:"content"`
}

type Client interface {
	// GeneratePlanJSON requests a structured crop plan as raw JSON text.
	// Model candidates are tried in order; the aggregated error reports every
	// candidate's failure reason.
	GeneratePlanJSON(ctx context.Context, system, user string) (string, error)

	// ChatReply answers a farmer question given the assembled conversation.
	ChatReply(ctx context.Context, messages []Message) (string, error)
}
