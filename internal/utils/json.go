package utils

import (
	"encoding/json"

	"k8s.io/klog/v2"
)

// ExtractJSON returns the first balanced {...} block in content, or content
// itself when no block is found. LLM responses frequently wrap the JSON body
// in prose or a markdown fence.
func ExtractJSON(content string) string {
	start := -1
	end := -1
	depth := 0

	for i, ch := range content {
		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				end = i + 1
				break
			}
		}
	}

	if start >= 0 && end > start {
		return content[start:end]
	}

	return content
}

// SafeUnmarshal parses an LLM response into out, salvaging embedded JSON
// first. Returns false when nothing parseable was found; out is left
// untouched in that case so callers can pre-fill a default.
func SafeUnmarshal(content string, out any) bool {
	cleaned := ExtractJSON(content)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		klog.V(6).Infof("SafeUnmarshal: unparseable response (%d bytes): %v", len(content), err)
		return false
	}
	return true
}

func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON marshal failed: %v", err)
		return ""
	}
	return string(jsonData)
}

// ToPrettyJSON renders v indented for inclusion in prompt content.
func ToPrettyJSON(v any) string {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		klog.Errorf("JSON marshal failed: %v", err)
		return ""
	}
	return string(jsonData)
}
