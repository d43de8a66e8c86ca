package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// normalizeListResponse unwraps the list shapes the backend is known to
// produce: a bare array, {"data": [...]}, or an envelope keyed by the
// collection name ({"rooms": [...]}, {"apartments": [...]}). The rest of the
// package always sees a plain JSON array.
func normalizeListResponse(raw []byte, collection string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected list response shape: %w", err)
	}
	for _, key := range []string{"data", collection} {
		if inner, ok := envelope[key]; ok {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("list response has neither %q nor \"data\" key", collection)
}
