package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/dossier/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name     string
	response *SummarizeResponse
	err      error
	request  SummarizeRequest
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func approvedDossier() *model.Dossier {
	return &model.Dossier{
		EntityName:     "Acme LLC",
		State:          "Delaware",
		KYBStatus:      model.KYBApproved,
		CreditDecision: model.DecisionApprove,
		UBOList:        []model.Owner{{Name: "Jane Doe", Role: model.String("Manager"), OwnershipPct: 60}},
		Financials: &model.FinancialSnapshot{
			GrossRevenue:      model.Float(1000000),
			OperatingExpenses: model.Float(700000),
			Depreciation:      model.Float(50000),
			AnnualDebtService: model.Float(200000),
			EBITDA:            model.Float(350000),
			DSCR:              model.Float(1.75),
		},
	}
}

func TestNewSummarizer_DisabledProvider(t *testing.T) {
	summarizer, err := NewSummarizer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summarizer.IsEnabled() {
		t.Error("Expected summarizer to be disabled")
	}
	if summarizer.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}

	summary, err := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if err != nil || summary != nil {
		t.Errorf("Expected nil summary and error when disabled, got %v, %v", summary, err)
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(Config{Provider: "bard"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewSummarizer_Providers(t *testing.T) {
	tests := []struct {
		provider string
		name     string
	}{
		{"openai", "openai"},
		{"Anthropic", "anthropic"},
		{"claude", "anthropic"},
		{"ollama", "ollama"},
	}
	for _, tt := range tests {
		summarizer, err := NewSummarizer(Config{Provider: tt.provider, APIKey: "k"})
		if err != nil {
			t.Fatalf("NewSummarizer(%s) failed: %v", tt.provider, err)
		}
		if summarizer.ProviderName() != tt.name {
			t.Errorf("Expected provider %s, got %s", tt.name, summarizer.ProviderName())
		}
	}
}

func TestSummarizer_GenerateSummary_Success(t *testing.T) {
	provider := &MockProvider{
		name: "test-provider",
		response: &SummarizeResponse{
			Summary:    "Acme LLC earned EBITDA of $350,000 against $200,000 of debt service, a DSCR of 1.75x.",
			Model:      "test-model-2",
			TokensUsed: 150,
		},
	}
	summarizer := &Summarizer{
		provider: provider,
		config:   Config{Model: "test-model", StrictFigures: true, MaxTokens: 400},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !summary.Enabled || !summary.StrictFigures {
		t.Errorf("Expected enabled strict summary, got %+v", summary)
	}
	if summary.Provider != "test-provider" || summary.Model != "test-model-2" {
		t.Errorf("Unexpected provider/model: %s/%s", summary.Provider, summary.Model)
	}
	if !strings.HasPrefix(summary.SummaryMD, "Acme LLC earned") {
		t.Errorf("Unexpected narrative: %s", summary.SummaryMD)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", summary.Warnings)
	}

	if provider.request.MaxTokens != 400 || provider.request.Model != "test-model" {
		t.Errorf("Unexpected request: %+v", provider.request)
	}
	if !strings.Contains(provider.request.Prompt, "- EBITDA: $350,000") {
		t.Errorf("Expected allowed figures in prompt:\n%s", provider.request.Prompt)
	}
}

func TestSummarizer_GenerateSummary_RejectsUnsupportedFigures(t *testing.T) {
	provider := &MockProvider{
		name:     "test-provider",
		response: &SummarizeResponse{Summary: "Revenue of $2.4 million supports a 2.10x coverage."},
	}
	summarizer := &Summarizer{provider: provider, config: Config{StrictFigures: true}}

	summary, err := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary.SummaryMD != "" {
		t.Errorf("Expected rejected narrative, got %q", summary.SummaryMD)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "$2.4 million, 2.10x") {
		t.Errorf("Expected rejection warning naming both figures, got %v", summary.Warnings)
	}
}

func TestSummarizer_GenerateSummary_LenientKeepsFigures(t *testing.T) {
	provider := &MockProvider{
		name:     "test-provider",
		response: &SummarizeResponse{Summary: "Revenue of $2.4 million."},
	}
	summarizer := &Summarizer{provider: provider, config: Config{StrictFigures: false}}

	summary, _ := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if summary.SummaryMD != "Revenue of $2.4 million." {
		t.Errorf("Expected narrative kept without strict figures, got %q", summary.SummaryMD)
	}
}

func TestSummarizer_GenerateSummary_ProviderError(t *testing.T) {
	summarizer := &Summarizer{
		provider: &MockProvider{name: "test-provider", err: errors.New("API rate limit exceeded")},
		config:   Config{StrictFigures: true},
	}

	summary, err := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if err != nil {
		t.Errorf("Expected no error (graceful degradation), got %v", err)
	}
	if summary == nil || summary.SummaryMD != "" {
		t.Fatalf("Expected empty summary with warning, got %+v", summary)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "failed: API rate limit exceeded") {
		t.Errorf("Expected failure warning, got %v", summary.Warnings)
	}
}

func TestSummarizer_GenerateSummary_EmptyText(t *testing.T) {
	summarizer := &Summarizer{
		provider: &MockProvider{name: "p", response: &SummarizeResponse{Summary: "   "}},
	}

	summary, _ := summarizer.GenerateSummary(context.Background(), approvedDossier())
	if len(summary.Warnings) != 1 {
		t.Errorf("Expected a warning for empty narrative, got %v", summary.Warnings)
	}
}

func TestBuildPrompt(t *testing.T) {
	d := approvedDossier()
	d.RiskAssessment = &model.RiskAssessment{Level: model.RiskLow, Reasons: []string{"a", "b", "c", "d"}}
	prompt := BuildPrompt(d, AllowedFigures(d))

	for _, want := range []string{
		"CRITICAL RULES",
		"- Gross Revenue: $1,000,000",
		"- DSCR: 1.75x",
		"- Entity: Acme LLC",
		"- Industry: Not provided",
		"- Credit Decision: APPROVE",
		"  - Jane Doe (Manager), 60%",
		"- Risk: LOW",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
	if strings.Contains(prompt, "  - d\n") {
		t.Error("Expected at most 3 risk reasons")
	}
}

func TestBuildPrompt_NoFigures(t *testing.T) {
	prompt := BuildPrompt(&model.Dossier{}, nil)
	if !strings.Contains(prompt, "(No figures available; cite none)") {
		t.Error("Expected no-figures marker")
	}
}

func TestUnsupportedFigures(t *testing.T) {
	d := approvedDossier()
	tests := []struct {
		text string
		want []string
	}{
		{"Revenue was $1,000,000.", nil},
		{"Revenue was $1M, EBITDA $350k.", nil},
		{"Debt service of $200,000, and DSCR 1.75x.", nil},
		{"Revenue near $1.2 million.", []string{"$1.2 million"}},
		{"Coverage is 2x.", []string{"2x"}},
		{"A $5,000 fee applies.", []string{"$5,000"}},
		{"No figures here, founded 2019.", nil},
	}
	for _, tt := range tests {
		got := UnsupportedFigures(tt.text, d)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("UnsupportedFigures(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if got := UnsupportedFigures("DSCR 1.75x", &model.Dossier{}); len(got) != 1 {
		t.Errorf("Expected ratio unsupported without financials, got %v", got)
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(
		model.LLMConfig{Provider: "ollama", Model: "mistral", Timeout: 10, MaxTokens: 500, StrictFigures: true},
		model.HTTPConfig{HTTPSProxy: "http://proxy:3128"},
	)
	if cfg.Provider != "ollama" || cfg.Model != "mistral" || cfg.Timeout != 10 || cfg.MaxTokens != 500 || !cfg.StrictFigures {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.HTTPSProxy != "http://proxy:3128" {
		t.Errorf("Expected proxy carried over, got %q", cfg.HTTPSProxy)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "" || !cfg.StrictFigures || cfg.Timeout != 30 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}
