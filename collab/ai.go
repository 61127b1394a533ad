package collab

import (
	"context"
	"fmt"
	"strings"

	iriscore "github.com/petal-labs/iris/core"
	"github.com/petal-labs/iris/providers"
	// Auto-register common providers.
	_ "github.com/petal-labs/iris/providers/anthropic"
	_ "github.com/petal-labs/iris/providers/ollama"
	_ "github.com/petal-labs/iris/providers/openai"
)

// Assistant generates short prose on behalf of tools: alt text, draft
// document bodies. Implementations own their own credentials and limits.
type Assistant interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// AssistantConfig selects and configures an AI provider.
type AssistantConfig struct {
	Provider string // iris provider name: "openai", "anthropic", "ollama"
	Model    string
	APIKey   string // empty means the provider resolves its own env convention
}

type irisAssistant struct {
	provider iriscore.Provider
	model    string
}

// NewAssistant creates an Assistant backed by the named iris provider.
func NewAssistant(cfg AssistantConfig) (Assistant, error) {
	if strings.TrimSpace(cfg.Provider) == "" {
		return nil, fmt.Errorf("collab: assistant provider is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("collab: assistant model is required")
	}
	provider, err := providers.Create(cfg.Provider, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("collab: creating provider %q: %w", cfg.Provider, err)
	}
	return &irisAssistant{provider: provider, model: cfg.Model}, nil
}

// Generate sends one chat turn and returns the provider's text output.
func (a *irisAssistant) Generate(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]iriscore.Message, 0, 2)
	if system != "" {
		messages = append(messages, iriscore.Message{
			Role:    iriscore.RoleSystem,
			Content: system,
		})
	}
	messages = append(messages, iriscore.Message{
		Role:    iriscore.RoleUser,
		Content: prompt,
	})

	resp, err := a.provider.Chat(ctx, &iriscore.ChatRequest{
		Model:    iriscore.ModelID(a.model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("collab: provider chat failed: %w", err)
	}
	output := strings.TrimSpace(resp.Output)
	if output == "" {
		return "", fmt.Errorf("collab: provider returned empty output")
	}
	return output, nil
}
