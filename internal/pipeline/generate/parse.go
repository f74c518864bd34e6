package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// The inference backend promises nothing about schema compliance: payloads
// arrive bare, wrapped in markdown fences, or buried in prose. Parsing runs
// two strategies in order: direct parse of the trimmed (fence-stripped)
// response, then regex extraction of the first well-formed JSON substring.

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	//drop the language tag line (```json)
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func unmarshalArray(raw string, target interface{}) error {
	candidate := stripCodeFences(raw)

	if err := json.Unmarshal([]byte(candidate), target); err == nil {
		return nil
	}

	if match := jsonArrayRe.FindString(candidate); match != "" {
		if err := json.Unmarshal([]byte(match), target); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no parseable JSON array in response")
}

func unmarshalObject(raw string, target interface{}) error {
	candidate := stripCodeFences(raw)

	if err := json.Unmarshal([]byte(candidate), target); err == nil {
		return nil
	}

	if match := jsonObjectRe.FindString(candidate); match != "" {
		if err := json.Unmarshal([]byte(match), target); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no parseable JSON object in response")
}
