package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/dossier/internal/llm"
	"github.com/ppiankov/dossier/internal/logging"
	"github.com/ppiankov/dossier/internal/metrics"
	"github.com/ppiankov/dossier/internal/pipeline"
	"github.com/ppiankov/dossier/internal/worker"
)

var (
	concurrency   int
	caseListFile  string
	batchTimeout  time.Duration
	batchIndustry string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [cases-dir]",
	Short: "Run every case directory through the pipeline in parallel",
	Long: `Batch runs independent cases concurrently. Each case is a directory holding
its own documents and its own dossier (company_dossier.json):

  cases/acme/articles.txt
  cases/acme/financials.csv
  cases/acme/transactions.txt
  cases/acme/sanctions.txt

Documents are recognised by file name (articles, financials, transactions,
sanctions and common variants). URL inputs share one cache and rate limiter.

Example:
  dossier batch ./cases
  dossier batch ./cases --concurrency 8
  dossier batch --file cases.txt --timeout 30m`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&caseListFile, "file", "", "file listing case directories, one per line")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchIndustry, "industry", "", "industry override applied to every case")
	batchCmd.Flags().StringVar(&metricsPath, "metrics", "", "write Prometheus metrics to this textfile")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache for URL inputs (force fresh fetch)")
	batchCmd.Flags().StringVar(&llmProvider, "llm", "", "append an LLM narrative to each memo (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (caseListFile == "") {
		return fmt.Errorf("give either a cases directory or --file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if cmd.Flags().Changed("concurrency") || cfg.Concurrency.Workers <= 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if err := applyLLMEnv(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	narrator, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return fmt.Errorf("configure llm: %w", err)
	}

	var dirs []string
	source := caseListFile
	if caseListFile != "" {
		dirs, err = worker.ReadCaseList(caseListFile)
	} else {
		source = args[0]
		dirs, err = worker.FindCaseDirs(args[0])
	}
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Dossier Batch Processing\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Cases:        %s (%d)\n", source, len(dirs))
	fmt.Fprintf(stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(stderr, "  Timeout:      %v\n", batchTimeout)
	if narrator.IsEnabled() {
		fmt.Fprintf(stderr, "  LLM:          %s/%s\n", narrator.ProviderName(), cfg.LLM.Model)
	}
	fmt.Fprintf(stderr, "\n")

	m := metrics.New()
	runner := pipeline.NewCaseRunner(cfg, batchIndustry, logger,
		pipeline.WithLoader(pipeline.NewLoader(cfg, logger)),
		pipeline.WithMetrics(m),
		pipeline.WithNarrator(narrator),
	)
	processor := worker.NewBatchProcessor(runner, cfg.Concurrency.Workers)

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	results := processor.ProcessCases(ctx, dirs)

	successCount := 0
	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Dir, result.Error)
			continue
		}
		successCount++
		fmt.Fprintf(stderr, "✓ %s (%s)\n", result.Dir, result.Outcome.CreditDecision)
	}

	if err := m.WriteToTextfile(cfg.Output.MetricsPath); err != nil {
		logger.Warn(err.Error())
	}

	writeOutcomeTable(cmd.OutOrStdout(), results)

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Batch Complete\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Total:     %d cases\n", len(results))
	fmt.Fprintf(stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(stderr, "  Failures:  %d\n", len(results)-successCount)
	fmt.Fprintf(stderr, "\n")

	if successCount < len(results) {
		return fmt.Errorf("%d of %d cases failed", len(results)-successCount, len(results))
	}
	return nil
}

// writeOutcomeTable prints one row per case in input order
func writeOutcomeTable(w io.Writer, results []*worker.CaseResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tENTITY\tKYB\tDECISION\tRISK\tSIGNALS")
	for _, r := range results {
		if r.Error != nil || r.Outcome == nil {
			fmt.Fprintf(tw, "%s\t-\t-\tERROR\t-\t-\n", r.Dir)
			continue
		}
		o := r.Outcome
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Dir, orDash(o.EntityName), o.KYBStatus, o.CreditDecision, o.RiskLevel, o.Signals)
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
