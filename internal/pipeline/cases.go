package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/store"
)

// DossierFile is the dossier file name inside a case directory
const DossierFile = "company_dossier.json"

// Recognized file stems per input kind
var caseFileStems = map[string][]string{
	KindArticles:     {"articles", "articles_of_organization", "operating_agreement"},
	KindFinancials:   {"financials", "financial_statement", "financial_statements"},
	KindTransactions: {"transactions", "bank_transactions", "bank_statement"},
	KindSanctions:    {"sanctions", "sanctions_list", "ofac"},
}

// DiscoverInputs finds the inputs of a case directory by file stem.
// When several files share a kind, the first in name order wins.
func DiscoverInputs(dir string) (Inputs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Inputs{}, fmt.Errorf("read case dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	found := make(map[string]string)
	for _, name := range names {
		stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		for kind, stems := range caseFileStems {
			if _, ok := found[kind]; ok {
				continue
			}
			for _, s := range stems {
				if stem == s {
					found[kind] = filepath.Join(dir, name)
				}
			}
		}
	}

	in := Inputs{
		Articles:     found[KindArticles],
		Financials:   found[KindFinancials],
		Transactions: found[KindTransactions],
		Sanctions:    found[KindSanctions],
		OutputDir:    dir,
	}
	if len(in.Refs()) == 0 {
		return Inputs{}, fmt.Errorf("no inputs found in %s", dir)
	}
	return in, nil
}

// CaseRunner runs one pipeline per case directory, each with its own dossier file
type CaseRunner struct {
	config   *model.Config
	industry string
	opts     []Option
	logger   *zap.Logger
}

// NewCaseRunner creates a case runner. opts apply to every case pipeline.
func NewCaseRunner(cfg *model.Config, industry string, logger *zap.Logger, opts ...Option) *CaseRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaseRunner{
		config:   cfg,
		industry: industry,
		opts:     append([]Option{WithLogger(logger)}, opts...),
		logger:   logger,
	}
}

// RunCase runs the pipeline over the inputs found in dir
func (r *CaseRunner) RunCase(ctx context.Context, dir string) (*model.CaseOutcome, error) {
	in, err := DiscoverInputs(dir)
	if err != nil {
		return nil, err
	}
	in.Industry = r.industry

	st := store.NewFileStore(filepath.Join(dir, DossierFile), r.logger)
	res, err := NewPipeline(r.config, st, r.opts...).Run(ctx, in)
	if err != nil {
		return nil, err
	}
	return Outcome(res), nil
}

// Outcome condenses a run result for batch reporting
func Outcome(res *Result) *model.CaseOutcome {
	return &model.CaseOutcome{
		RunID:          res.RunID,
		EntityName:     res.Dossier.EntityName,
		KYBStatus:      res.Summary.KYBStatus,
		CreditDecision: res.Summary.CreditDecision,
		RiskLevel:      res.Summary.Risk.Level,
		Signals:        len(res.Summary.Signals),
	}
}
