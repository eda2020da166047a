// pkg/ai/hf_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agriai/pkg/plan/normalize"
)

const hfChatCompletionsURL = "https://router.huggingface.co/v1/chat/completions"

// Candidates are tried in order; generation stops at the first non-empty
// reply.
var planModelCandidates = []string{
	"mistralai/Mistral-7B-Instruct-v0.3",
	"meta-llama/Llama-3.1-8B-Instruct",
	"Qwen/Qwen2.5-7B-Instruct",
}

var chatModelCandidates = []string{
	"mistralai/Mistral-7B-Instruct-v0.1",
	"mistralai/Mistral-7B-Instruct-v0.3",
	"meta-llama/Llama-3.1-8B-Instruct",
	"Qwen/Qwen2.5-7B-Instruct",
}

type hfClient struct {
	endpoint string
	token    string
	planHC   *http.Client
	chatHC   *http.Client
}

// NewHF returns a Client backed by the HuggingFace router's OpenAI-compatible
// chat-completions endpoint.
func NewHF(token string) Client {
	return &hfClient{
		endpoint: hfChatCompletionsURL,
		token:    strings.TrimSpace(token),
		planHC:   &http.Client{Timeout: 40 * time.Second},
		chatHC:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *hfClient) GeneratePlanJSON(ctx context.Context, system, user string) (string, error) {
	if c.token == "" {
		return "", ErrNotConfigured
	}
	messages := []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	var errs []string
	for _, model := range planModelCandidates {
		body := map[string]any{
			"model":           model,
			"messages":        messages,
			"max_tokens":      3500,
			"temperature":     0.3,
			"top_p":           0.9,
			"response_format": map[string]string{"type": "json_object"},
		}
		content, err := c.complete(ctx, c.planHC, model, body)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		// Malformed JSON counts as a failed candidate; extraction gets one
		// recovery attempt via boundary scanning.
		if _, err := normalize.ExtractJSONObject(content); err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid JSON (%v)", model, err))
			continue
		}
		return content, nil
	}
	return "", aggregated("plan generation failed", errs)
}

func (c *hfClient) ChatReply(ctx context.Context, messages []Message) (string, error) {
	if c.token == "" {
		return "", ErrNotConfigured
	}

	var errs []string
	for _, model := range chatModelCandidates {
		body := map[string]any{
			"model":       model,
			"messages":    messages,
			"max_tokens":  300,
			"temperature": 0.7,
			"top_p":       0.95,
		}
		content, err := c.complete(ctx, c.chatHC, model, body)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		return content, nil
	}
	return "", aggregated("chat generation failed", errs)
}

// complete posts one chat-completion request and returns the first choice's
// content. Failures carry the model name plus an HTTP status and body snippet
// for diagnostics.
func (c *hfClient) complete(ctx context.Context, hc *http.Client, model string, body map[string]any) (string, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", model, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", model, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", model, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: %d %s", model, resp.StatusCode, snippet(data, 150))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", model, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices", model)
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%s: empty content", model)
	}
	return content, nil
}

func aggregated(prefix string, errs []string) error {
	if len(errs) > 3 {
		errs = errs[:3]
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(errs, " | "))
}

func snippet(b []byte, n int) string {
	s := string(b)
	if len(s) > n {
		s = s[:n]
	}
	return s
}
