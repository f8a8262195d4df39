package proposal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Parse decodes a WorkBreakdown from JSON. Model-produced payloads are often
// slightly malformed (trailing commas, unquoted keys, markdown fences), so a
// strict decode failure falls back to jsonrepair before giving up.
func Parse(data []byte) (*WorkBreakdown, error) {
	text := stripFences(string(data))

	var w WorkBreakdown
	if err := json.Unmarshal([]byte(text), &w); err == nil {
		return &w, nil
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, fmt.Errorf("work breakdown is not valid JSON and could not be repaired: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &w); err != nil {
		return nil, fmt.Errorf("repaired work breakdown still failed to decode: %w", err)
	}
	return &w, nil
}

// stripFences removes a surrounding ```json ... ``` block when present.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
