package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/dossier/internal/llm"
	"github.com/ppiankov/dossier/internal/logging"
	"github.com/ppiankov/dossier/internal/metrics"
	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/pipeline"
	"github.com/ppiankov/dossier/internal/store"
)

var (
	articlesRef     string
	financialsRef   string
	transactionsRef string
	sanctionsRef    string
	industry        string
	dossierPath     string
	storeBackend    string
	outDir          string
	jsonOut         bool
	metricsPath     string
	runTimeout      time.Duration
	noCache         bool
	llmProvider     string
	llmModel        string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the KYB, compliance, credit and signal pipeline over one set of documents",
	Long: `Run loads the supplied documents, updates the company dossier and writes
the credit memo and sales brief next to it.

Inputs may be local files (.txt, .md, .csv, .html, .docx, .xlsx, .pdf) or http(s) URLs.
Inputs are loaded in order: articles, financials, transactions, sanctions.
Any load failure aborts the run before the dossier is touched.

Example:
  dossier run --articles articles.txt --financials financials.csv --transactions tx.txt
  dossier run --articles articles.docx --sanctions ofac.txt --out ./out --json
  dossier run --financials https://example.com/statement.pdf --llm openai`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Input flags
	runCmd.Flags().StringVar(&articlesRef, "articles", "", "articles of organization / operating agreement (file or URL)")
	runCmd.Flags().StringVar(&financialsRef, "financials", "", "financial statement (file or URL)")
	runCmd.Flags().StringVar(&transactionsRef, "transactions", "", "bank transactions (file or URL)")
	runCmd.Flags().StringVar(&sanctionsRef, "sanctions", "", "sanctions list, one name per line (file or URL)")
	runCmd.Flags().StringVar(&industry, "industry", "", "industry override (treated as explicit)")

	// Store and output flags
	runCmd.Flags().StringVar(&dossierPath, "dossier", "", "dossier file path (default from config: company_dossier.json)")
	runCmd.Flags().StringVar(&storeBackend, "store", "", "dossier store backend (file, redis)")
	runCmd.Flags().StringVar(&outDir, "out", "", "output directory for the memo and brief")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run summary as JSON")
	runCmd.Flags().StringVar(&metricsPath, "metrics", "", "write Prometheus metrics to this textfile")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall run timeout")
	runCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache for URL inputs (force fresh fetch)")

	// LLM flags
	runCmd.Flags().StringVar(&llmProvider, "llm", "", "append an LLM narrative to the memo (openai, anthropic, ollama)")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	in := pipeline.Inputs{
		Articles:     articlesRef,
		Financials:   financialsRef,
		Transactions: transactionsRef,
		Sanctions:    sanctionsRef,
		Industry:     industry,
		OutputDir:    outDir,
	}
	if len(in.Refs()) == 0 {
		return fmt.Errorf("no inputs given (use --articles, --financials, --transactions or --sanctions)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if err := applyLLMEnv(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	st, closeStore, err := store.New(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil && err == nil {
			err = fmt.Errorf("close store: %w", closeErr)
		}
	}()

	narrator, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return fmt.Errorf("configure llm: %w", err)
	}

	m := metrics.New()
	p := pipeline.NewPipeline(cfg, st,
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(m),
		pipeline.WithNarrator(narrator),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
	defer cancel()

	progress(cmd, cfg, "⚙️  Running pipeline over %d inputs...\n", len(in.Refs()))
	res, runErr := p.Run(ctx, in)

	if mErr := m.WriteToTextfile(cfg.Output.MetricsPath); mErr != nil {
		logger.Warn(mErr.Error())
	}
	if runErr != nil {
		return fmt.Errorf("run failed: %w", runErr)
	}

	progress(cmd, cfg, "✓ KYB status: %s\n", res.Summary.KYBStatus)
	progress(cmd, cfg, "✓ Credit decision: %s\n", res.Summary.CreditDecision)
	if res.Narrative != nil && res.Narrative.SummaryMD != "" {
		progress(cmd, cfg, "✓ Generated narrative using %s\n", narrator.ProviderName())
	}
	if res.Artifacts.Dossier != "" {
		progress(cmd, cfg, "✓ Dossier saved: %s\n", res.Artifacts.Dossier)
	}
	progress(cmd, cfg, "\n")

	r := p.Renderer()
	if jsonOut {
		return r.RenderSummaryJSON(cmd.OutOrStdout(), res)
	}
	r.RenderSummary(cmd.OutOrStdout(), res)
	return nil
}

// applyRunFlags lets explicitly set flags win over file and env config
func applyRunFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("dossier") {
		cfg.Store.Path = dossierPath
	}
	if flags.Changed("store") {
		cfg.Store.Backend = storeBackend
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("metrics") {
		cfg.Output.MetricsPath = metricsPath
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("llm") {
		cfg.LLM.Provider = llmProvider
	}
	if flags.Changed("llm-model") {
		cfg.LLM.Model = llmModel
	}
}
