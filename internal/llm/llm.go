// Package llm defines the text-generation capability the interview pipeline
// depends on. Provider packages (gemini, openai, anthropic) implement Client.
package llm

import (
	"context"
	"strings"
)

// Client sends a single prompt and returns the raw model text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Options carries the generation parameters shared by every provider.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

const fence = "```"

// CleanJSON extracts the JSON document from a model reply. The first fenced
// block wins, wherever it appears. Without a fence, the span from the first
// opening bracket to the last closing one is used. Text with neither is
// returned trimmed so the caller's parse reports it.
func CleanJSON(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, fence); i >= 0 {
		body := s[i+len(fence):]
		body = strings.TrimPrefix(body, "json")
		body = strings.TrimPrefix(body, "JSON")
		if j := strings.Index(body, fence); j >= 0 {
			body = body[:j]
		}
		return strings.TrimSpace(body)
	}

	start := strings.IndexAny(s, "[{")
	end := strings.LastIndexAny(s, "]}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
