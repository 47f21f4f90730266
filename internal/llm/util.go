// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanFences removes markdown code fence wrappers from a response.
// Models often wrap plain-text answers in ``` blocks even when instructed
// not to; downstream line parsers should never see the fence markers.
func CleanFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a language identifier on the opening fence line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
