package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ppiankov/dossier/internal/decision"
	"github.com/ppiankov/dossier/internal/extract"
	"github.com/ppiankov/dossier/internal/metrics"
	"github.com/ppiankov/dossier/internal/model"
	"github.com/ppiankov/dossier/internal/screen"
	"github.com/ppiankov/dossier/internal/signals"
	"github.com/ppiankov/dossier/internal/store"
	"github.com/ppiankov/dossier/internal/textconv"
)

const (
	MemoFile  = "credit_memo.md"
	BriefFile = "sales_brief.md"
)

// Input kinds, in load order
const (
	KindArticles     = "articles"
	KindFinancials   = "financials"
	KindTransactions = "transactions"
	KindSanctions    = "sanctions"
)

// Inputs names the documents of one run. Empty references are skipped.
type Inputs struct {
	Articles     string
	Financials   string
	Transactions string
	Sanctions    string
	Industry     string // Overrides dossier.industry (explicit)
	OutputDir    string // Memo and brief directory; output.dir when empty
}

// Refs returns the non-empty input references in load order
func (in Inputs) Refs() []string {
	var refs []string
	for _, ref := range []string{in.Articles, in.Financials, in.Transactions, in.Sanctions} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Artifacts lists what a run wrote
type Artifacts struct {
	Dossier string `json:"dossier,omitempty"`
	Memo    string `json:"memo,omitempty"`
	Brief   string `json:"brief,omitempty"`
}

// Result is the outcome of a committed run
type Result struct {
	RunID     string
	Dossier   *model.Dossier
	Summary   decision.Summary
	Narrative *model.LLMSummary
	Artifacts Artifacts
}

// Narrator writes the optional memo narrative. It never influences decisions.
type Narrator interface {
	IsEnabled() bool
	GenerateSummary(ctx context.Context, d *model.Dossier) (*model.LLMSummary, error)
}

// Pipeline orchestrates one dossier run: load, extract, decide, commit
type Pipeline struct {
	config    *model.Config
	store     store.DossierStore
	loader    InputLoader
	converter textconv.TextExtractor
	sanctions screen.SanctionsSource // Overrides Inputs.Sanctions when set
	narrator  Narrator

	kyb       *extract.KYBExtractor
	financial *extract.FinancialParser
	txParser  *extract.TransactionParser
	detector  *signals.Detector
	engine    *decision.Engine
	renderer  *Renderer

	metrics *metrics.Metrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLoader replaces the file/URL loader
func WithLoader(l InputLoader) Option {
	return func(p *Pipeline) { p.loader = l }
}

// WithTextExtractor replaces the converter registry
func WithTextExtractor(t textconv.TextExtractor) Option {
	return func(p *Pipeline) { p.converter = t }
}

// WithSanctionsSource supplies sanctions entries directly
func WithSanctionsSource(s screen.SanctionsSource) Option {
	return func(p *Pipeline) { p.sanctions = s }
}

// WithNarrator enables the memo narrative
func WithNarrator(n Narrator) Option {
	return func(p *Pipeline) { p.narrator = n }
}

// NewPipeline creates a pipeline persisting to st
func NewPipeline(cfg *model.Config, st store.DossierStore, opts ...Option) *Pipeline {
	p := &Pipeline{
		config:    cfg,
		store:     st,
		kyb:       extract.NewKYBExtractor(cfg.Thresholds.UBOMinPct),
		financial: extract.NewFinancialParser(),
		txParser:  extract.NewTransactionParser(),
		detector:  signals.NewDetector(cfg.Thresholds.LiquidityMinAmount),
		engine:    decision.NewDefaultEngine(cfg),
		renderer:  NewRenderer(),
		logger:    zap.NewNop(),
		tracer:    otel.Tracer("github.com/ppiankov/dossier/internal/pipeline"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.loader == nil {
		p.loader = NewLoader(cfg, p.logger)
	}
	if p.converter == nil {
		p.converter = textconv.NewRegistry()
	}
	return p
}

// Renderer exposes the artifact renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// stageInputs holds converted text per kind; absent kinds were not supplied
type stageInputs struct {
	texts            map[string]string
	sanctions        []string
	sanctionsChecked bool
}

// Run executes one run. Nothing is persisted unless every step succeeds.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (res *Result, err error) {
	started := time.Now().UTC()
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))

	ctx, span := p.tracer.Start(ctx, "dossier.run", trace.WithAttributes(attribute.String("run_id", runID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			p.metrics.IncRun("failure")
		} else {
			p.metrics.IncRun("success")
		}
		span.End()
	}()

	// Phase 1: collaborators, sequentially, before any stage runs
	prior, err := p.store.Load(ctx)
	if err != nil {
		return nil, collaboratorError(ErrStore, "load dossier", "", err)
	}

	inputs, err := p.loadInputs(ctx, in, logger)
	if err != nil {
		return nil, err
	}

	// Phase 2: stages on a copy of the loaded dossier
	stageIn := decision.Input{
		SanctionsEntries: inputs.sanctions,
		SanctionsChecked: inputs.sanctionsChecked,
		IndustryOverride: in.Industry,
	}

	if text, ok := inputs.texts[KindArticles]; ok {
		p.stage(ctx, "kyb", logger, func() {
			kyb := p.kyb.Extract(text)
			stageIn.KYB = &kyb
			p.recordKYBMisses(kyb)
		})
	}

	if text, ok := inputs.texts[KindFinancials]; ok {
		p.stage(ctx, "financials", logger, func() {
			fin := p.financial.Parse(text)
			stageIn.Financials = &fin
			for _, field := range model.FinancialFields {
				if fin.Snapshot.Get(field) == nil {
					p.metrics.IncMiss(string(field))
				}
			}
			if fin.Scaled {
				logger.Debug("financial values scaled from thousands")
			}
		})
	}

	if text, ok := inputs.texts[KindTransactions]; ok {
		p.stage(ctx, "signals", logger, func() {
			txs := p.txParser.Parse(text)
			stageIn.Signals = p.detector.Detect(txs)
			logger.Debug("transactions parsed",
				zap.Int("transactions", len(txs)),
				zap.Int("signals", len(stageIn.Signals)),
			)
		})
	}

	var d *model.Dossier
	var sum decision.Summary
	p.stage(ctx, "decide", logger, func() {
		d, sum = p.engine.Evaluate(prior, stageIn)
	})
	for _, c := range sum.Changes {
		logger.Debug("field merge",
			zap.String("field", c.Field),
			zap.String("confidence", string(c.Confidence)),
			zap.Bool("applied", c.Applied),
		)
	}

	res = &Result{
		RunID:   runID,
		Dossier: d,
		Summary: sum,
	}

	if p.narrator != nil && p.narrator.IsEnabled() {
		narrative, nerr := p.narrator.GenerateSummary(ctx, d)
		if nerr != nil {
			logger.Warn("narrative generation failed", zap.Error(nerr))
		} else if narrative != nil {
			res.Narrative = narrative
			for _, w := range narrative.Warnings {
				logger.Warn("narrative warning", zap.String("warning", w))
			}
		}
	}

	d.LastRun = &model.RunMeta{
		RunID:       runID,
		StartedAt:   started,
		CompletedAt: time.Now().UTC(),
		Inputs:      in.Refs(),
	}

	// Phase 3: commit
	outDir := in.OutputDir
	if outDir == "" {
		outDir = p.config.Output.Dir
	}
	memo := p.renderer.RenderMemo(d, res.Narrative)
	brief := p.renderer.RenderBrief(d, sum.Signals)

	artifacts, err := p.commit(ctx, d, memo, brief, outDir)
	if err != nil {
		return nil, err
	}
	res.Artifacts = artifacts

	p.metrics.IncKYB(string(sum.KYBStatus))
	p.metrics.IncDecision(string(sum.CreditDecision))
	for _, f := range sum.Findings {
		p.metrics.IncFinding(string(f.Kind))
	}
	for _, s := range sum.Signals {
		p.metrics.IncSignal(string(s.Signal))
	}

	logger.Info("run committed",
		zap.String("entity", d.EntityName),
		zap.String("decision", string(sum.CreditDecision)),
		zap.String("risk", string(sum.Risk.Level)),
	)
	return res, nil
}

// loadInputs loads articles, financials, transactions and sanctions in that order
func (p *Pipeline) loadInputs(ctx context.Context, in Inputs, logger *zap.Logger) (*stageInputs, error) {
	out := &stageInputs{texts: make(map[string]string)}

	for _, input := range []struct{ kind, ref string }{
		{KindArticles, in.Articles},
		{KindFinancials, in.Financials},
		{KindTransactions, in.Transactions},
	} {
		if input.ref == "" {
			continue
		}
		text, err := p.loadText(ctx, input.kind, input.ref)
		if err != nil {
			return nil, err
		}
		out.texts[input.kind] = text
		logger.Debug("input loaded", zap.String("kind", input.kind), zap.String("ref", input.ref), zap.Int("chars", len(text)))
	}

	source := p.sanctions
	if source == nil && in.Sanctions != "" {
		source = &documentSource{pipeline: p, ref: in.Sanctions}
	}
	if source == nil {
		return out, nil
	}

	start := time.Now()
	entries, err := source.Entries(ctx)
	if err != nil {
		var ce *CollaboratorError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, collaboratorError(ErrFetch, "load sanctions", in.Sanctions, err)
	}
	p.metrics.ObserveInput(KindSanctions, time.Since(start))

	out.sanctions = entries
	out.sanctionsChecked = true
	logger.Debug("sanctions loaded", zap.Int("entries", len(entries)))
	return out, nil
}

// loadText loads one input and converts it to text
func (p *Pipeline) loadText(ctx context.Context, kind, ref string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "load."+kind, trace.WithAttributes(attribute.String("ref", ref)))
	defer span.End()
	start := time.Now()

	doc, err := p.loader.Load(ctx, ref)
	if err != nil {
		return "", collaboratorError(ErrFetch, "load "+kind, ref, err)
	}
	text, err := p.converter.ToText(doc.Data, doc.Ext)
	if err != nil {
		return "", collaboratorError(ErrExtract, "convert "+kind, ref, err)
	}

	p.metrics.ObserveInput(kind, time.Since(start))
	return text, nil
}

// documentSource reads sanctions entries from any loadable document
type documentSource struct {
	pipeline *Pipeline
	ref      string
}

func (s *documentSource) Entries(ctx context.Context) ([]string, error) {
	text, err := s.pipeline.loadText(ctx, KindSanctions, s.ref)
	if err != nil {
		return nil, err
	}
	return screen.ParseEntries(text), nil
}

// stage runs fn as a traced, timed pipeline stage
func (p *Pipeline) stage(ctx context.Context, name string, logger *zap.Logger, fn func()) {
	_, span := p.tracer.Start(ctx, "stage."+name)
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	span.End()

	p.metrics.ObserveStage(name, elapsed)
	logger.Debug("stage complete", zap.String("stage", name), zap.Duration("elapsed", elapsed))
}

func (p *Pipeline) recordKYBMisses(kyb extract.KYBExtraction) {
	for _, field := range p.kyb.Missing(kyb) {
		p.metrics.IncMiss(field)
	}
}

// commit stages memo and brief, saves the dossier, then moves the artifacts into place.
// A failure before the save leaves no artifact behind.
func (p *Pipeline) commit(ctx context.Context, d *model.Dossier, memo, brief, dir string) (Artifacts, error) {
	ctx, span := p.tracer.Start(ctx, "commit")
	defer span.End()

	memoPath := filepath.Join(dir, MemoFile)
	briefPath := filepath.Join(dir, BriefFile)

	memoTmp, err := store.StageFile(memoPath, []byte(memo))
	if err != nil {
		return Artifacts{}, collaboratorError(ErrRender, "stage memo", memoPath, err)
	}
	briefTmp, err := store.StageFile(briefPath, []byte(brief))
	if err != nil {
		_ = os.Remove(memoTmp)
		return Artifacts{}, collaboratorError(ErrRender, "stage brief", briefPath, err)
	}

	if err := p.store.Save(ctx, d); err != nil {
		_ = os.Remove(memoTmp)
		_ = os.Remove(briefTmp)
		return Artifacts{}, collaboratorError(ErrStore, "save dossier", "", err)
	}

	if err := os.Rename(memoTmp, memoPath); err != nil {
		_ = os.Remove(memoTmp)
		_ = os.Remove(briefTmp)
		return Artifacts{}, collaboratorError(ErrRender, "write memo", memoPath, err)
	}
	if err := os.Rename(briefTmp, briefPath); err != nil {
		_ = os.Remove(briefTmp)
		return Artifacts{}, collaboratorError(ErrRender, "write brief", briefPath, err)
	}

	artifacts := Artifacts{Memo: memoPath, Brief: briefPath}
	if fs, ok := p.store.(interface{ Path() string }); ok {
		artifacts.Dossier = fs.Path()
	}
	return artifacts, nil
}
