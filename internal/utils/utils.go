package utils

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an OpenAI call failed with a transient
// condition worth one more attempt (rate limits, upstream 5xx,
// timeouts). Anything else is treated as permanent.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}

	msg := strings.ToLower(err.Error())
	for _, transient := range []string{
		"rate limit",
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
		"context deadline exceeded",
	} {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}

// StripCodeFence removes a surrounding markdown code fence from LLM
// output, with or without a language tag. Output without an opening
// fence is returned unchanged, even when it happens to end in
// backticks.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
