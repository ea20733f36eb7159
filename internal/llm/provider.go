package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/dossier/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates the memo narrative
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for narrative generation
type SummarizeRequest struct {
	// Prompt is the complete user prompt, see BuildPrompt
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the generated narrative
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// StrictFigures rejects narratives citing amounts absent from the dossier
	StrictFigures bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns the disabled default
func DefaultConfig() Config {
	return Config{
		Timeout:       30,
		StrictFigures: true,
		MaxTokens:     800,
	}
}

// systemPrompt is shared by every provider
const systemPrompt = "You are a credit analyst assistant. You restate underwriting facts from a dossier; you never decide, score or invent figures."

// BuildPrompt constructs the narrative prompt. Only the figures in allowed may be cited.
func BuildPrompt(d *model.Dossier, allowed []string) string {
	var b strings.Builder

	b.WriteString(`You are writing a short narrative for a commercial credit memo. The decision has already been made by policy rules; do not change, question or re-derive it.

CRITICAL RULES:
1. You MUST ONLY cite monetary figures and ratios from this allowed list:
`)
	b.WriteString(joinFigures(allowed))
	b.WriteString(`

2. DO NOT estimate, round or compute new figures.
3. If information is missing, say it was not provided.
4. Never recommend a different decision.

Dossier:
`)
	fmt.Fprintf(&b, "- Entity: %s\n", orNotProvided(d.EntityName))
	fmt.Fprintf(&b, "- State: %s\n", orNotProvided(d.State))
	fmt.Fprintf(&b, "- Industry: %s\n", orNotProvided(d.Industry))
	fmt.Fprintf(&b, "- KYB Status: %s\n", orNotProvided(string(d.KYBStatus)))
	fmt.Fprintf(&b, "- Credit Decision: %s\n", orNotProvided(string(d.CreditDecision)))
	if d.ComplianceSummary != nil {
		fmt.Fprintf(&b, "- Compliance: %s (%d issues)\n", d.ComplianceSummary.Status, len(d.ComplianceSummary.IssuesFound))
	}
	if len(d.UBOList) > 0 {
		b.WriteString("- Beneficial owners:\n")
		for _, o := range d.UBOList {
			fmt.Fprintf(&b, "  - %s (%s), %s%%\n", o.Name, orNotProvided(o.RoleName()), formatPct(o.OwnershipPct))
		}
	}
	if d.RiskAssessment != nil {
		fmt.Fprintf(&b, "- Risk: %s\n", d.RiskAssessment.Level)
		for i, reason := range d.RiskAssessment.Reasons {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&b, "  - %s\n", reason)
		}
	}

	b.WriteString("\nProvide a 3-4 sentence narrative summarizing the business, its coverage and the recorded decision.")
	return b.String()
}

func joinFigures(figures []string) string {
	if len(figures) == 0 {
		return "(No figures available; cite none)"
	}
	var b strings.Builder
	for i, f := range figures {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(f)
	}
	return b.String()
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}
