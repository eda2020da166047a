// pkg/kb/embedder/embedder.go

// Package embedder turns knowledge-base text into dense vectors through the
// HuggingFace router's OpenAI-compatible embeddings endpoint.
package embedder

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	embeddingsURL = "https://router.huggingface.co/v1/embeddings"
	defaultModel  = "sentence-transformers/all-MiniLM-L6-v2"
)

type Client struct {
	endpoint string
	token    string
	model    string
	hc       *http.Client
}

// New returns nil when no token is configured; callers treat a nil client as
// keyword-only search.
func New(token string) *Client {
	if token == "" {
		return nil
	}
	return &Client{
		endpoint: embeddingsURL,
		token:    token,
		model:    defaultModel,
		hc:       &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(map[string]any{"model": c.model, "input": texts})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embeddings: %d", resp.StatusCode)
	}

	var out struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	res := make([][]float32, len(out.Data))
	for i := range out.Data {
		res[i] = out.Data[i].Embedding
	}
	return res, nil
}

func FloatsToBytes(v []float32) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func BytesToFloats(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, &out)
	return out
}
