package engine

import (
	"context"
	"fmt"
	"strings"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured model and returns the
// fence-stripped response text.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	metrics.LLMCalls.Add(1)
	if cfg.LLMClient == nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("%w: no client configured", ErrLLM)
	}
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("%w: %v", ErrLLM, err)
	}
	return stripFences(resp), nil
}
