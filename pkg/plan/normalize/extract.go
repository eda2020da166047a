// pkg/plan/normalize/extract.go

package normalize

import (
	"encoding/json"
	"errors"
	"strings"
)

// ExtractJSONObject recovers a JSON object from raw model output. It strips
// markdown code fences, then tries a direct parse, then falls back to the
// span between the first '{' and the last '}'.
func ExtractJSONObject(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New("empty generation response")
	}

	if strings.Contains(text, "```") {
		cleaned := strings.ReplaceAll(text, "```json", "```")
		for _, block := range strings.Split(cleaned, "```") {
			block = strings.TrimSpace(block)
			if strings.HasPrefix(block, "{") && strings.HasSuffix(block, "}") {
				text = block
				break
			}
		}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, errors.New("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
