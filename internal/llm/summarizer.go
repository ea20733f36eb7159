package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// Summarizer generates the optional credit memo narrative
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer. An empty provider yields a disabled summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// ProviderName returns the configured provider, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if !s.IsEnabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary asks the provider for a narrative of d.
// Provider failures and rejected narratives are reported as warnings, never as errors,
// so a narrative problem can not fail a run. Returns nil when disabled.
func (s *Summarizer) GenerateSummary(ctx context.Context, d *model.Dossier) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	summary := &model.LLMSummary{
		Enabled:       true,
		Provider:      s.provider.Name(),
		Model:         s.config.Model,
		StrictFigures: s.config.StrictFigures,
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Prompt:    BuildPrompt(d, AllowedFigures(d)),
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("narrative generation failed: %v", err))
		return summary, nil
	}
	if resp.Model != "" {
		summary.Model = resp.Model
	}

	text := strings.TrimSpace(resp.Summary)
	if text == "" {
		summary.Warnings = append(summary.Warnings, "narrative generation returned no text")
		return summary, nil
	}

	if s.config.StrictFigures {
		if unsupported := UnsupportedFigures(text, d); len(unsupported) > 0 {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("narrative rejected: cites figures not in the dossier: %s", strings.Join(unsupported, ", ")))
			return summary, nil
		}
	}

	summary.SummaryMD = text
	return summary, nil
}
