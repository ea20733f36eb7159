package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - narrative disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel builds the provider config from the llm and http sections
func ConfigFromModel(llmCfg model.LLMConfig, httpCfg model.HTTPConfig) Config {
	return Config{
		Provider:      llmCfg.Provider,
		Model:         llmCfg.Model,
		APIKey:        llmCfg.APIKey,
		BaseURL:       llmCfg.BaseURL,
		Timeout:       llmCfg.Timeout,
		StrictFigures: llmCfg.StrictFigures,
		MaxTokens:     llmCfg.MaxTokens,
		HTTPProxy:     httpCfg.HTTPProxy,
		HTTPSProxy:    httpCfg.HTTPSProxy,
		NoProxy:       httpCfg.NoProxy,
	}
}
