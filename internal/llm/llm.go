// Package llm abstracts the generative-AI provider.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Client abstracts generative-AI providers.
type Client interface {
	// GenerateText returns free-form text (typically an HTML fragment).
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON returns the raw bytes of a JSON response, with markdown
	// fences already stripped. The bytes are not guaranteed to be valid JSON.
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

var (
	// ErrNotConfigured is returned by Placeholder when no provider key is set.
	ErrNotConfigured = errors.New("LLM provider not configured")
	// ErrMalformed marks a provider response that could not be parsed into the
	// expected shape. Callers decide whether to degrade or propagate.
	ErrMalformed = errors.New("malformed model response")
)

// Placeholder is the Client used when no provider is configured.
type Placeholder struct{}

func (Placeholder) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", ErrNotConfigured
}

func (Placeholder) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	return nil, ErrNotConfigured
}

// CleanFences removes markdown code-fence wrappers. Models often wrap output
// in ```json ... ``` even when told not to.
func CleanFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		// A short first line with no spaces is a language tag, not content.
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") && !strings.Contains(firstLine, "<") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// DecodeJSON strips fences and unmarshals raw into out, wrapping any parse
// failure in ErrMalformed so callers can match on it.
func DecodeJSON(raw []byte, out any) error {
	cleaned := CleanFences(string(raw))
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
